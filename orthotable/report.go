package orthotable

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// ReportRow records how one ortholog group fared against the thresholds.
type ReportRow struct {
	GroupID         string  `csv:"Orthogroup"`
	MissingFraction float64 `csv:"MissingFraction"`
	MaxCopies       int     `csv:"MaxCopies"`
	Selected        bool    `csv:"Selected"`
}

// Report evaluates every row against the thresholds and returns one entry
// per table row, in table order. Unlike Filter, excluded groups are kept so
// the caller can see why each group fell out.
func (tbl *Table) Report(t Thresholds) []ReportRow {
	out := make([]ReportRow, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		out = append(out, ReportRow{
			GroupID:         row.GroupID,
			MissingFraction: row.MissingFraction(),
			MaxCopies:       row.MaxCopies(),
			Selected:        t.Qualifies(row),
		})
	}

	return out
}

// WriteReport emits the report as tab-separated values with a header row.
func WriteReport(w io.Writer, rows []ReportRow) error {
	// Tell gocsv to emit tabs rather than commas
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		cw := csv.NewWriter(out)
		cw.Comma = '\t'
		return gocsv.NewSafeCSVWriter(cw)
	})

	if err := gocsv.Marshal(&rows, w); err != nil {
		return pfx.Err(err)
	}

	return nil
}

func WriteReportFile(path string, rows []ReportRow) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}

	if err := WriteReport(f, rows); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
