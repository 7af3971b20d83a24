package batch

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWriteReport(t *testing.T) {
	summary := Summary{Results: []Result{
		{
			Input:     "data/estimate_01.json",
			Output:    "output/estimate_01.pdf",
			DocNumber: "20251113-01",
		},
		{
			Input: "data/broken.json",
			Err:   errors.New("record: parse data/broken.json: unexpected EOF"),
		},
	}}

	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := WriteReport(path, summary); err != nil {
		t.Fatalf("write report: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open report: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(reportSheet)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header plus 2 results", len(rows))
	}
	if rows[0][0] != "Input File" || rows[0][3] != "Status" {
		t.Fatalf("unexpected header row %v", rows[0])
	}
	if rows[1][1] != "20251113-01" || rows[1][3] != "ok" {
		t.Fatalf("unexpected success row %v", rows[1])
	}
	if rows[2][3] != "failed" || rows[2][4] == "" {
		t.Fatalf("unexpected failure row %v", rows[2])
	}
}

func TestWriteReport_EmptySummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := WriteReport(path, Summary{}); err != nil {
		t.Fatalf("write report: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open report: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(reportSheet)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want header only", len(rows))
	}
}
