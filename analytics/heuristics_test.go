package analytics

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFullMarkGuesses(t *testing.T) {
	h := DefaultHeuristics()

	cases := []struct {
		column string
		want   float64
	}{
		{"总分", 0},
		{"Total", 0},
		{"语数英", 450},
		{"语文", 150},
		{"数学", 150},
		{"English", 150},
		{"物理", 100},
		{"Geography", 100},
	}

	for _, tc := range cases {
		if got := h.FullMark(tc.column); got != tc.want {
			t.Errorf("FullMark(%q) = %v, want %v", tc.column, got, tc.want)
		}
	}
}

func TestExcludedMarkers(t *testing.T) {
	h := DefaultHeuristics()

	for _, name := range []string{"学号", "Student ID", "id", "排名", "Rank", "姓名", "Name", "班级", "Class"} {
		if !h.Excluded(name) {
			t.Errorf("Excluded(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"Math", "语文", "Score"} {
		if h.Excluded(name) {
			t.Errorf("Excluded(%q) = true, want false", name)
		}
	}
}

func TestExcludedMarkersMatchWholeWords(t *testing.T) {
	h := DefaultHeuristics()

	// Short ASCII markers must not swallow score-like headers that merely
	// contain them.
	for _, name := range []string{"Midterm", "Holiday quiz", "Grand total rankings"} {
		if h.Excluded(name) {
			t.Errorf("Excluded(%q) = true, want false", name)
		}
	}
	for _, name := range []string{"exam id", "No. 2", "class rank"} {
		if !h.Excluded(name) {
			t.Errorf("Excluded(%q) = false, want true", name)
		}
	}
}

func TestIsClassColumn(t *testing.T) {
	h := DefaultHeuristics()

	for _, name := range []string{"class", "Class", " CLASS ", "班级", "行政班级"} {
		if !h.IsClassColumn(name) {
			t.Errorf("IsClassColumn(%q) = false, want true", name)
		}
	}
	if h.IsClassColumn("Math") {
		t.Error("Math is not a class column")
	}
}

func TestLoadHeuristicsOverridesPartially(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heuristics.yaml")
	data := []byte(`
full_mark_rules:
  - pattern: physics
    mark: 70
default_full_mark: 120
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	h, err := LoadHeuristics(path)
	if err != nil {
		t.Fatalf("LoadHeuristics: %v", err)
	}

	if got := h.FullMark("Physics I"); got != 70 {
		t.Errorf("overridden rule: FullMark = %v, want 70", got)
	}
	if got := h.FullMark("语文"); got != 120 {
		t.Errorf("file replaced the rule list; unmatched names use the new default 120, got %v", got)
	}
	if !h.Excluded("姓名") {
		t.Error("exclude markers absent from the file must keep defaults")
	}
	if h.UnclassifiedLabel != "unclassified" {
		t.Errorf("unclassified label = %q, want default", h.UnclassifiedLabel)
	}
}

func TestLoadHeuristicsMissingFile(t *testing.T) {
	if _, err := LoadHeuristics(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing file should error")
	}
}
