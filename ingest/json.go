package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/gradelens/gradelens/sheet"
)

// historyDocument is the persisted export format: one JSON file holding
// any number of named tables, typically accumulated over several exams.
type historyDocument struct {
	Tables []historyTable `json:"tables"`
}

type historyTable struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// ReadJSON decodes a history document into sheets. Cells arrive as JSON
// strings, numbers or nulls; empty strings normalize to nil like every
// other ingestion path.
func ReadJSON(path string) ([]*sheet.Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	var doc historyDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	if len(doc.Tables) == 0 {
		return nil, fmt.Errorf("decode history: no tables in %s", path)
	}

	sheets := make([]*sheet.Sheet, 0, len(doc.Tables))
	for _, table := range doc.Tables {
		s := sheet.New(table.Name, table.Columns)
		for _, raw := range table.Rows {
			row := make([]sheet.Cell, len(table.Columns))
			for i := range row {
				if i < len(raw) {
					row[i] = normalizeJSONCell(raw[i])
				}
			}
			s.Rows = append(s.Rows, row)
		}
		sheets = append(sheets, s)
	}
	return sheets, nil
}

func normalizeJSONCell(v any) sheet.Cell {
	switch cell := v.(type) {
	case nil:
		return nil
	case float64:
		return cell
	case string:
		trimmed := strings.TrimSpace(cell)
		if trimmed == "" {
			return nil
		}
		return trimmed
	default:
		// Booleans and nested structures carry no score semantics.
		return nil
	}
}

// Merge concatenates sheets that share an identical header (ignoring
// case), appending later rows after earlier ones; sheets with distinct
// headers stay separate. Merged tables keep the first sheet's name.
// Input sheets are not modified.
func Merge(sheets []*sheet.Sheet) []*sheet.Sheet {
	var order []string
	merged := make(map[string]*sheet.Sheet)

	for _, s := range sheets {
		key := headerKey(s.Columns)
		if existing, ok := merged[key]; ok {
			existing.Rows = append(existing.Rows, s.Rows...)
			continue
		}

		clone := sheet.New(s.Name, s.Columns)
		clone.Rows = append(clone.Rows, s.Rows...)
		merged[key] = clone
		order = append(order, key)
	}

	out := make([]*sheet.Sheet, 0, len(order))
	for _, key := range order {
		out = append(out, merged[key])
	}
	return out
}

func headerKey(columns []string) string {
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = strings.ToLower(strings.TrimSpace(c))
	}
	return strings.Join(parts, "\x1f")
}
