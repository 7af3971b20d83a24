package batch

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const reportSheet = "Results"

// WriteReport saves an xlsx workbook summarising a batch run, one row per
// input file.
func WriteReport(path string, summary Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", reportSheet)

	headers := []string{"Input File", "Document Number", "Output File", "Status", "Error"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("batch: report header: %w", err)
		}
		if err := f.SetCellValue(reportSheet, cell, header); err != nil {
			return fmt.Errorf("batch: report header: %w", err)
		}
	}

	for i, res := range summary.Results {
		status := "ok"
		errMsg := ""
		if res.Err != nil {
			status = "failed"
			errMsg = res.Err.Error()
		}

		values := []any{res.Input, res.DocNumber, res.Output, status, errMsg}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return fmt.Errorf("batch: report row %d: %w", i+1, err)
			}
			if err := f.SetCellValue(reportSheet, cell, value); err != nil {
				return fmt.Errorf("batch: report row %d: %w", i+1, err)
			}
		}
	}

	if err := f.SetColWidth(reportSheet, "A", "C", 40); err != nil {
		return fmt.Errorf("batch: report layout: %w", err)
	}
	if err := f.SetColWidth(reportSheet, "E", "E", 60); err != nil {
		return fmt.Errorf("batch: report layout: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("batch: save report: %w", err)
	}
	return nil
}
