// Package sheet defines the tabular data model consumed by the analytics
// engine: a named table of column headers and rows of mixed-typed cells.
//
// Producers (the ingest package, or any host application) guarantee that
// every row has the same length as the column list. The engine treats a
// Sheet as read-only; nothing in this repository mutates one after it is
// built.
package sheet

import (
	"math"
	"strconv"
	"strings"
)

// Cell is a single table cell: a string, a float64, an int, or nil for a
// missing value. Numeric-looking strings are acceptable; coercion happens
// at classification time, not at ingestion time.
type Cell any

// Sheet is an ordered table. Column names are not required to be unique.
type Sheet struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Rows    [][]Cell `json:"rows"`
}

// New returns an empty sheet with the given name and headers.
func New(name string, columns []string) *Sheet {
	return &Sheet{
		Name:    name,
		Columns: columns,
		Rows:    make([][]Cell, 0),
	}
}

// RowCount returns the number of data rows.
func (s *Sheet) RowCount() int {
	return len(s.Rows)
}

// Cell returns the cell at (row, col), or nil when the indices fall outside
// the table. Rows are produced with uniform length, but defensive indexing
// keeps a malformed row from panicking the engine.
func (s *Sheet) Cell(row, col int) Cell {
	if row < 0 || row >= len(s.Rows) {
		return nil
	}
	r := s.Rows[row]
	if col < 0 || col >= len(r) {
		return nil
	}
	return r[col]
}

// Float coerces a cell to a finite float64. Numbers pass through; strings
// are parsed after trimming whitespace. NaN, infinities, nil and everything
// else report ok=false.
func Float(c Cell) (float64, bool) {
	switch v := c.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Text renders a cell as a string label. Nil cells yield the empty string;
// numbers use the shortest representation that round-trips.
func Text(c Cell) string {
	switch v := c.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}
