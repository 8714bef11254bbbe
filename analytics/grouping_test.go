package analytics

import (
	"testing"

	"github.com/gradelens/gradelens/sheet"
)

func TestGroupByClass(t *testing.T) {
	c := NewClassifier()
	s := gradeSheet()
	columns := c.Classify(s)

	groups := c.GroupByClass(s, columns)
	if groups == nil {
		t.Fatal("sheet has a 班级 column, grouping must not be absent")
	}

	class1, ok := groups["Class 1"]
	if !ok {
		t.Fatalf("missing group Class 1, got %v", groups)
	}
	if got := class1["Math"]; len(got) != 2 || got[0] != 92 || got[1] != 75 {
		t.Errorf("Class 1 Math = %v, want [92 75]", got)
	}
	if got := groups["Class 2"]["Math"]; len(got) != 1 || got[0] != 88 {
		t.Errorf("Class 2 Math = %v, want [88] (missing cell skipped)", got)
	}
	if got := groups["Class 2"]["English"]; len(got) != 2 {
		t.Errorf("Class 2 English = %v, want two values", got)
	}
}

func TestGroupByClassAbsent(t *testing.T) {
	c := NewClassifier()
	s := sheet.New("t", []string{"Name", "Math"})
	s.Rows = [][]sheet.Cell{{"Ann", 90.0}}

	if groups := c.GroupByClass(s, c.Classify(s)); groups != nil {
		t.Fatalf("no class column: grouping must be nil, got %v", groups)
	}
}

func TestGroupByClassUnclassified(t *testing.T) {
	c := NewClassifier()
	s := sheet.New("t", []string{"Class", "Math"})
	s.Rows = [][]sheet.Cell{
		{"3-1", 90.0},
		{nil, 72.0},
		{"  ", 65.0},
	}

	groups := c.GroupByClass(s, c.Classify(s))
	if groups == nil {
		t.Fatal("grouping should locate the Class column")
	}

	unclassified := groups[c.Heuristics().UnclassifiedLabel]
	if unclassified == nil {
		t.Fatalf("missing unclassified group, got %v", groups)
	}
	if got := unclassified["Math"]; len(got) != 2 || got[0] != 72 || got[1] != 65 {
		t.Errorf("unclassified Math = %v, want [72 65]", got)
	}
}
