package analytics

import (
	"testing"

	"github.com/gradelens/gradelens/sheet"
)

func reportSheet() *sheet.Sheet {
	s := sheet.New("final", []string{"姓名", "班级", "Math", "English", "总分"})
	s.Rows = [][]sheet.Cell{
		{"Ann", "1", 95.0, 88.0, 183.0},
		{"Ben", "1", 70.0, 66.0, 136.0},
		{"Cam", "2", 82.0, 79.0, 161.0},
		{"Dee", "2", 58.0, 91.0, 149.0},
		{"Eli", "1", 76.0, 73.0, 149.0},
	}
	return s
}

func TestReportColumns(t *testing.T) {
	report := NewAnalyzer().Report(reportSheet())

	if report.ID == "" {
		t.Error("report must carry an id")
	}
	if report.Sheet != "final" || report.Rows != 5 {
		t.Errorf("header = %q/%d, want final/5", report.Sheet, report.Rows)
	}
	if len(report.Columns) != 3 {
		t.Fatalf("columns = %d, want 3 (Math, English, 总分)", len(report.Columns))
	}

	byName := make(map[string]ColumnReport)
	for _, cr := range report.Columns {
		byName[cr.Name] = cr
	}

	math := byName["Math"]
	if math.Count != 5 || math.Min != 58 || math.Max != 95 {
		t.Errorf("Math summary = %+v", math)
	}
	if math.Pass == nil {
		t.Fatal("Math has a positive full mark, pass stats must be present")
	}
	if math.Pass.Total != 5 {
		t.Errorf("Math pass total = %d, want 5", math.Pass.Total)
	}

	total := byName["总分"]
	if total.FullMark != 0 {
		t.Errorf("总分 full mark = %v, want 0", total.FullMark)
	}
	if total.Pass != nil || total.Bands != nil {
		t.Error("total column must not carry percentage-based stats")
	}
	if total.Histogram == nil {
		t.Error("total column still gets a histogram")
	}
}

func TestReportGradesCoverEveryScore(t *testing.T) {
	report := NewAnalyzer().Report(reportSheet())

	for _, cr := range report.Columns {
		total := 0
		for _, n := range cr.Grades {
			total += n
		}
		if total != cr.Count {
			t.Errorf("%s grade counts sum to %d, want %d", cr.Name, total, cr.Count)
		}
	}
}

func TestReportCorrelationsSymmetric(t *testing.T) {
	report := NewAnalyzer().Report(reportSheet())

	m := report.Correlations
	if m == nil {
		t.Fatal("report should include a correlation matrix")
	}
	if len(m.Columns) != 3 {
		t.Fatalf("matrix columns = %v", m.Columns)
	}
	for i := range m.Values {
		for j := range m.Values[i] {
			if m.Values[i][j] != m.Values[j][i] {
				t.Fatalf("matrix not symmetric at (%d,%d)", i, j)
			}
		}
	}
}

func TestReportClassAverages(t *testing.T) {
	report := NewAnalyzer().Report(reportSheet())

	if report.ClassAverages == nil {
		t.Fatal("sheet has a class column, averages must be present")
	}
	class1 := report.ClassAverages["1"]
	if class1 == nil {
		t.Fatalf("missing class 1, got %v", report.ClassAverages)
	}
	// Class 1 Math: (95+70+76)/3.
	want := (95.0 + 70.0 + 76.0) / 3.0
	if got := class1["Math"]; got != want {
		t.Errorf("class 1 Math average = %v, want %v", got, want)
	}
}

func TestReportNoClassColumn(t *testing.T) {
	s := sheet.New("t", []string{"Name", "Math"})
	s.Rows = [][]sheet.Cell{{"Ann", 90.0}, {"Ben", 60.0}}

	report := NewAnalyzer().Report(s)
	if report.ClassAverages != nil {
		t.Error("no class column: averages must be absent, not empty")
	}
}
