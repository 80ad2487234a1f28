// Package workbook reads and writes spreadsheet files as named sheets of
// header-keyed row records. It is the only package that touches spreadsheet
// bytes; the engine works purely on the shapes defined here.
package workbook

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
)

// ErrInvalidWorkbook marks input bytes that are not a readable spreadsheet.
// It is fatal for the whole run; there are no partial results.
var ErrInvalidWorkbook = errors.New("invalid workbook")

// Row is one data row keyed by its raw header text.
type Row = map[string]any

// Sheet is one named sheet's data rows.
type Sheet struct {
	Name string
	Rows []Row
}

// Workbook is a fully loaded spreadsheet.
type Workbook struct {
	Sheets []Sheet
}

// SheetNames returns the sheet names in file order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}
	return names
}

// Sheet returns the named sheet, if present.
func (w *Workbook) Sheet(name string) (Sheet, bool) {
	for _, s := range w.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return Sheet{}, false
}

// Open loads a workbook from disk, dispatching on the file extension. Legacy
// binary .xls exports still circulate among the older platform dumps;
// everything else is read as OOXML.
func Open(path string) (*Workbook, error) {
	if strings.EqualFold(filepath.Ext(path), ".xls") {
		return openXLS(path)
	}
	return openXLSX(path)
}

func openXLSX(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filepath.Base(path), ErrInvalidWorkbook)
	}
	defer f.Close()

	wb := &Workbook{}
	for _, name := range f.GetSheetList() {
		cells, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", name, ErrInvalidWorkbook)
		}
		wb.Sheets = append(wb.Sheets, Sheet{Name: name, Rows: rowsFromCells(cells)})
	}
	return wb, nil
}

func openXLS(path string) (*Workbook, error) {
	book, err := xls.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filepath.Base(path), ErrInvalidWorkbook)
	}

	wb := &Workbook{}
	for i := 0; i < book.GetNumberSheets(); i++ {
		sheet, err := book.GetSheet(i)
		if err != nil || sheet == nil {
			continue
		}
		var cells [][]string
		for r := 0; r <= int(sheet.GetNumberRows()); r++ {
			row, err := sheet.GetRow(r)
			if err != nil || row == nil {
				continue
			}
			var line []string
			for _, col := range row.GetCols() {
				if col != nil {
					line = append(line, col.GetString())
				} else {
					line = append(line, "")
				}
			}
			cells = append(cells, line)
		}
		wb.Sheets = append(wb.Sheets, Sheet{Name: sheet.GetName(), Rows: rowsFromCells(cells)})
	}
	return wb, nil
}

// rowsFromCells converts a header row plus data rows into keyed records.
// Columns with a blank header are dropped, and blank cells stay absent from
// the record so downstream lookups can tell "missing" from "empty". Rows
// with no populated cell at all are skipped.
func rowsFromCells(cells [][]string) []Row {
	if len(cells) == 0 {
		return nil
	}

	headers := cells[0]
	var rows []Row
	for _, line := range cells[1:] {
		row := Row{}
		for i, header := range headers {
			if strings.TrimSpace(header) == "" || i >= len(line) {
				continue
			}
			if line[i] == "" {
				continue
			}
			row[header] = line[i]
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows
}
