// Package ingest parses tabular exports (CSV, XLSX, JSON history
// documents) into sheet.Sheet values for the analytics engine. Ingestion
// normalizes empty cells to nil and splits files holding several stacked
// tables, but leaves numeric coercion to the classifier.
package ingest

import (
	"fmt"
	"strings"

	"github.com/gradelens/gradelens/logging"
	"github.com/gradelens/gradelens/sheet"
)

// SplitTables turns raw string rows into one or more sheets. The first
// non-blank row is the header; a later row that repeats the header
// (case-insensitively, same width) starts a new table, which is how
// exports with several stacked tables in one file are pulled apart.
// Blank separator rows are skipped. Every data row is padded or trimmed
// to the header width so the engine's row-length invariant holds.
func SplitTables(name string, rows [][]string) []*sheet.Sheet {
	var sheets []*sheet.Sheet
	var current *sheet.Sheet

	finish := func() {
		if current == nil {
			return
		}
		if current.RowCount() == 0 {
			logging.Warn("dropping header-only table", logging.Fields{
				"source": name,
				"table":  current.Name,
			})
		} else {
			sheets = append(sheets, current)
		}
		current = nil
	}

	for _, raw := range rows {
		if isBlankRow(raw) {
			continue
		}

		if current == nil {
			current = sheet.New(tableName(name, len(sheets)), trimAll(raw))
			continue
		}
		if matchesHeader(raw, current.Columns) {
			finish()
			current = sheet.New(tableName(name, len(sheets)), trimAll(raw))
			continue
		}

		current.Rows = append(current.Rows, normalizeRow(raw, len(current.Columns)))
	}
	finish()

	if len(sheets) > 1 {
		logging.Debug("split stacked tables", logging.Fields{
			"source": name,
			"tables": len(sheets),
		})
	}
	return sheets
}

func tableName(base string, index int) string {
	if index == 0 {
		return base
	}
	return fmt.Sprintf("%s (%d)", base, index+1)
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func trimAll(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = strings.TrimSpace(cell)
	}
	return out
}

func matchesHeader(row, header []string) bool {
	if len(row) != len(header) {
		return false
	}
	for i := range row {
		if !strings.EqualFold(strings.TrimSpace(row[i]), header[i]) {
			return false
		}
	}
	return true
}

// normalizeRow converts raw strings to cells: blanks become nil, numbers
// stay as strings for the classifier to coerce later.
func normalizeRow(raw []string, width int) []sheet.Cell {
	row := make([]sheet.Cell, width)
	for i := 0; i < width; i++ {
		if i >= len(raw) {
			continue
		}
		trimmed := strings.TrimSpace(raw[i])
		if trimmed == "" {
			continue
		}
		row[i] = trimmed
	}
	return row
}
