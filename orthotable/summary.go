package orthotable

import (
	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"
)

// Summary aggregates the filtering outcome for end-of-run reporting.
type Summary struct {
	Groups   int
	Selected int

	// Over the selected groups only.
	MeanMissingFraction   float64
	MedianMissingFraction float64
	MeanMaxCopies         float64
	LargestMaxCopies      float64
}

// Summarize computes run-level statistics for the rows passing the
// thresholds. With an empty selection the statistics stay zero.
func (tbl *Table) Summarize(t Thresholds) (Summary, error) {
	out := Summary{Groups: len(tbl.Rows)}

	missing := make([]float64, 0, len(tbl.Rows))
	copies := make([]float64, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		if !t.Qualifies(row) {
			continue
		}

		missing = append(missing, row.MissingFraction())
		copies = append(copies, float64(row.MaxCopies()))
	}

	out.Selected = len(missing)
	if out.Selected == 0 {
		return out, nil
	}

	var err error
	if out.MeanMissingFraction, err = stats.Mean(missing); err != nil {
		return out, pfx.Err(err)
	}
	if out.MedianMissingFraction, err = stats.Median(missing); err != nil {
		return out, pfx.Err(err)
	}
	if out.MeanMaxCopies, err = stats.Mean(copies); err != nil {
		return out, pfx.Err(err)
	}
	if out.LargestMaxCopies, err = stats.Max(copies); err != nil {
		return out, pfx.Err(err)
	}

	return out, nil
}

// MissingFractions returns every row's missing-taxa fraction in table order,
// for histogram display.
func (tbl *Table) MissingFractions() []float64 {
	out := make([]float64, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		out = append(out, row.MissingFraction())
	}

	return out
}
