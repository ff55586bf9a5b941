package orthotable

import (
	"bytes"
	"strings"
	"testing"
)

func TestReport(t *testing.T) {
	table := mustReadTable(t, sampleTable)
	th := Thresholds{MaxMissingFraction: 0.5, MaxCopies: 2}

	rows := table.Report(th)
	if len(rows) != len(table.Rows) {
		t.Fatalf("Expected %d report rows, got %d", len(table.Rows), len(rows))
	}

	if !rows[0].Selected || rows[1].Selected || !rows[2].Selected {
		t.Errorf("Unexpected selection pattern %+v", rows)
	}

	if rows[1].MissingFraction != 1.0 || rows[1].MaxCopies != 0 {
		t.Errorf("Unexpected derived values for all-zero row: %+v", rows[1])
	}
}

func TestWriteReport(t *testing.T) {
	table := mustReadTable(t, sampleTable)

	var buf bytes.Buffer
	if err := WriteReport(&buf, table.Report(Thresholds{MaxMissingFraction: 0.5, MaxCopies: 2})); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected header plus 3 rows, got %d lines", len(lines))
	}

	if !strings.HasPrefix(lines[0], "Orthogroup\t") {
		t.Errorf("Unexpected header %q", lines[0])
	}

	if fields := strings.Split(lines[1], "\t"); fields[0] != "OG0000000" {
		t.Errorf("Unexpected first data row %q", lines[1])
	}
}
