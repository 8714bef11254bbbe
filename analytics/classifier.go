package analytics

import (
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/gradelens/gradelens/sheet"
)

// NumericColumn is a column classified as score-bearing: the numeric
// subsequence of its cells in row order, plus summary statistics. It is
// derived on demand and never stored.
type NumericColumn struct {
	Name    string    `json:"name"`
	Index   int       `json:"index"`
	Values  []float64 `json:"values"`
	Average float64   `json:"average"`
	Max     float64   `json:"max"`
	Min     float64   `json:"min"`
}

// Classifier decides which sheet columns are numeric score columns.
type Classifier struct {
	heuristics *Heuristics
}

// NewClassifier creates a classifier with DefaultHeuristics.
func NewClassifier() *Classifier {
	return &Classifier{heuristics: DefaultHeuristics()}
}

// NewClassifierWithHeuristics creates a classifier with custom rules.
// A nil argument falls back to the defaults.
func NewClassifierWithHeuristics(h *Heuristics) *Classifier {
	if h == nil {
		h = DefaultHeuristics()
	}
	return &Classifier{heuristics: h}
}

// Heuristics returns the classifier's decision rules.
func (c *Classifier) Heuristics() *Heuristics {
	return c.heuristics
}

// Classify scans every non-excluded column and keeps the ones where
// strictly more than half of the rows hold a numeric value. Unparsable
// and missing cells are skipped, never replaced with a placeholder, so
// Values holds only real scores in row order.
func (c *Classifier) Classify(s *sheet.Sheet) []NumericColumn {
	if s == nil {
		return nil
	}

	rowCount := len(s.Rows)
	columns := make([]NumericColumn, 0, len(s.Columns))

	for idx, name := range s.Columns {
		if c.heuristics.Excluded(name) {
			continue
		}

		values := make([]float64, 0, rowCount)
		for r := range s.Rows {
			if v, ok := sheet.Float(s.Cell(r, idx)); ok {
				values = append(values, v)
			}
		}

		// Strictly more than 50% numeric, and at least one value.
		if len(values) == 0 || 2*len(values) <= rowCount {
			continue
		}

		columns = append(columns, NumericColumn{
			Name:    name,
			Index:   idx,
			Values:  values,
			Average: stat.Mean(values, nil),
			Max:     floats.Max(values),
			Min:     floats.Min(values),
		})
	}
	return columns
}

// FindColumn looks a classified column up by name, case-insensitively.
func FindColumn(columns []NumericColumn, name string) (NumericColumn, bool) {
	for _, col := range columns {
		if strings.EqualFold(col.Name, name) {
			return col, true
		}
	}
	return NumericColumn{}, false
}
