package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SheetData is an ordered set of columns plus row values for one output
// sheet. Rows holds one value slice per data row, aligned with Columns.
type SheetData struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// Write serializes the sheets into an .xlsx file at path.
func Write(path string, sheets []SheetData) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return fmt.Errorf("naming sheet %q: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("creating sheet %q: %w", sheet.Name, err)
		}

		header := make([]any, len(sheet.Columns))
		for c, col := range sheet.Columns {
			header[c] = col
		}
		if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
			return fmt.Errorf("writing header of %q: %w", sheet.Name, err)
		}

		for r := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return fmt.Errorf("addressing row %d of %q: %w", r+2, sheet.Name, err)
			}
			if err := f.SetSheetRow(sheet.Name, cell, &sheet.Rows[r]); err != nil {
				return fmt.Errorf("writing row %d of %q: %w", r+2, sheet.Name, err)
			}
		}
	}

	return f.SaveAs(path)
}
