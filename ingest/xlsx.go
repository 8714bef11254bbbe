package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/gradelens/gradelens/logging"
	"github.com/gradelens/gradelens/sheet"
)

// ReadXLSX extracts tables from an Excel workbook. With an empty
// sheetName every worksheet is read; otherwise only the named one.
// Worksheets that fail to read are skipped with a warning rather than
// failing the whole workbook.
func ReadXLSX(path, sheetName string) ([]*sheet.Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	names := f.GetSheetList()
	if sheetName != "" {
		names = []string{sheetName}
	}

	var sheets []*sheet.Sheet
	for _, name := range names {
		rows, err := f.GetRows(name)
		if err != nil {
			logging.Warn("skipping unreadable worksheet", logging.Fields{
				"workbook":  path,
				"worksheet": name,
				"error":     err.Error(),
			})
			continue
		}
		sheets = append(sheets, SplitTables(name, rows)...)
	}

	if len(sheets) == 0 {
		return nil, fmt.Errorf("no tables in workbook %s", path)
	}
	return sheets, nil
}
