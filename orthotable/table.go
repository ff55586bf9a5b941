// Package orthotable parses the Orthogroups.GeneCount.tsv table produced by
// OrthoFinder 2.5.x and filters its ortholog groups by missing-taxa fraction
// and per-taxon copy number.
package orthotable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/carbocation/pfx"
)

var (
	// ErrMalformedTable marks a gene-count table whose header or rows do
	// not match the OrthoFinder layout. The whole table is rejected; a
	// partially valid table is never partially processed.
	ErrMalformedTable = errors.New("malformed gene count table")
)

// Table is a fully parsed gene-count table, held in memory for the run.
type Table struct {
	// Taxa holds the header taxon names, excluding the leading
	// "Orthogroup" column and the trailing "Total" column.
	Taxa []string
	Rows []Row
}

// Row is one ortholog group: its identifier and one copy count per taxon,
// in header order. The table's Total column is dropped during parsing.
type Row struct {
	GroupID string
	Counts  []int
}

// MissingFraction returns the proportion of taxa contributing zero copies
// to this group.
func (r Row) MissingFraction() float64 {
	missing := 0
	for _, c := range r.Counts {
		if c == 0 {
			missing++
		}
	}

	return float64(missing) / float64(len(r.Counts))
}

// MaxCopies returns the largest single-taxon copy count in this group. This
// is the quantity bounded by the copy threshold, not the row total.
func (r Row) MaxCopies() int {
	max := 0
	for _, c := range r.Counts {
		if c > max {
			max = c
		}
	}

	return max
}

// ReadTable parses a tab-delimited gene-count table. The first record is the
// header ["Orthogroup", taxon_1, ..., taxon_T, "Total"]; every subsequent
// record is [group_id, count_1, ..., count_T, total]. The trailing total is
// redundant with the counts and is ignored, never cross-validated.
func ReadTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'

	records, err := cr.ReadAll()
	if err != nil {
		return nil, pfx.Err(err)
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("%w: no header row", ErrMalformedTable)
	}

	header := records[0]
	if len(header) < 3 {
		return nil, fmt.Errorf("%w: header has %d columns, need at least 3 (identifier, one taxon, total)", ErrMalformedTable, len(header))
	}

	out := &Table{
		Taxa: header[1 : len(header)-1],
		Rows: make([]Row, 0, len(records)-1),
	}

	taxonCount := len(out.Taxa)

	for i, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("%w: row %d has %d columns, header has %d", ErrMalformedTable, i+1, len(rec), len(header))
		}

		if rec[0] == "" {
			return nil, fmt.Errorf("%w: row %d has an empty group identifier", ErrMalformedTable, i+1)
		}

		row := Row{
			GroupID: rec[0],
			Counts:  make([]int, 0, taxonCount),
		}

		// The final field is the row total, which we skip.
		for j, field := range rec[1 : len(rec)-1] {
			count, err := strconv.Atoi(field)
			if err != nil || count < 0 {
				return nil, fmt.Errorf("%w: row %d (%s), taxon %s: %q is not a non-negative integer", ErrMalformedTable, i+1, rec[0], out.Taxa[j], field)
			}

			row.Counts = append(row.Counts, count)
		}

		out.Rows = append(out.Rows, row)
	}

	return out, nil
}

// ReadTableFile opens and parses the gene-count table at path.
func ReadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	return ReadTable(f)
}
