package analytics

import (
	"strings"

	"github.com/gradelens/gradelens/sheet"
)

// GroupByClass partitions the values of the given score columns by the
// sheet's class column: class label -> column name -> values in row order.
//
// It returns nil when no class column can be located, which is distinct
// from a class column whose groups happen to be empty. Rows with a
// missing or blank class cell are collected under the heuristics'
// UnclassifiedLabel instead of a stringified null.
func (c *Classifier) GroupByClass(s *sheet.Sheet, columns []NumericColumn) map[string]map[string][]float64 {
	if s == nil {
		return nil
	}

	classIdx := -1
	for idx, name := range s.Columns {
		if c.heuristics.IsClassColumn(name) {
			classIdx = idx
			break
		}
	}
	if classIdx < 0 {
		return nil
	}

	groups := make(map[string]map[string][]float64)
	for r := range s.Rows {
		label := strings.TrimSpace(sheet.Text(s.Cell(r, classIdx)))
		if label == "" {
			label = c.heuristics.UnclassifiedLabel
		}

		byColumn, ok := groups[label]
		if !ok {
			byColumn = make(map[string][]float64)
			groups[label] = byColumn
		}

		for _, col := range columns {
			if v, ok := sheet.Float(s.Cell(r, col.Index)); ok {
				byColumn[col.Name] = append(byColumn[col.Name], v)
			}
		}
	}
	return groups
}
