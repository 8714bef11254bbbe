package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gradelens/gradelens/sheet"
)

// ReadCSV parses a CSV/TSV export into sheets, auto-detecting the
// delimiter among comma, semicolon and tab from the first line.
func ReadCSV(path string) ([]*sheet.Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	content := string(data)
	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = detectDelimiter(firstLine(content))
	reader.FieldsPerRecord = -1 // stacked tables may differ in width
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	sheets := SplitTables(name, rows)
	if len(sheets) == 0 {
		return nil, fmt.Errorf("parse csv: no tables in %s", path)
	}
	return sheets, nil
}

func firstLine(content string) string {
	if idx := strings.IndexByte(content, '\n'); idx >= 0 {
		return content[:idx]
	}
	return content
}

// detectDelimiter picks the candidate occurring most often in the header
// line, defaulting to comma.
func detectDelimiter(line string) rune {
	best, bestCount := ',', strings.Count(line, ",")
	for _, candidate := range []rune{';', '\t'} {
		if n := strings.Count(line, string(candidate)); n > bestCount {
			best, bestCount = candidate, n
		}
	}
	return best
}
