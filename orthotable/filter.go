package orthotable

import (
	"errors"
	"fmt"
)

// ErrInvalidThreshold marks threshold values outside their valid domain.
// Caught before any table parsing begins.
var ErrInvalidThreshold = errors.New("invalid threshold")

// Thresholds are the two filtering bounds, fixed for a whole run.
type Thresholds struct {
	// MaxMissingFraction is the largest tolerable proportion of taxa with
	// zero copies in a group, in [0, 1].
	MaxMissingFraction float64

	// MaxCopies is the largest tolerable single-taxon copy count.
	MaxCopies int
}

func (t Thresholds) Validate() error {
	if t.MaxMissingFraction < 0 || t.MaxMissingFraction > 1 {
		return fmt.Errorf("%w: missing-taxa fraction %g is outside [0, 1]", ErrInvalidThreshold, t.MaxMissingFraction)
	}

	if t.MaxCopies < 0 {
		return fmt.Errorf("%w: maximum copy count %d is negative", ErrInvalidThreshold, t.MaxCopies)
	}

	return nil
}

// Qualifies reports whether the row passes both thresholds. The two tests
// are independent reads of the same counts vector.
func (t Thresholds) Qualifies(r Row) bool {
	return r.MissingFraction() <= t.MaxMissingFraction && r.MaxCopies() <= t.MaxCopies
}

// Filter returns the identifiers of every group passing both thresholds, in
// table order. An empty result is a valid outcome, not an error. Each row is
// evaluated on its own counts alone, so repeated calls with the same
// thresholds return identical results.
func (tbl *Table) Filter(t Thresholds) []string {
	selected := make([]string, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		if t.Qualifies(row) {
			selected = append(selected, row.GroupID)
		}
	}

	return selected
}
