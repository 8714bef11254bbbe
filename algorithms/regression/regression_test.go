package regression

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCorrelateSelf(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	if r := Correlate(x, x); !almostEqual(r, 1) {
		t.Fatalf("Correlate(x, x) = %v, want 1", r)
	}
}

func TestCorrelateSymmetry(t *testing.T) {
	x := []float64{3, 8, 1, 9, 4}
	y := []float64{7, 2, 5, 6, 1}
	if rxy, ryx := Correlate(x, y), Correlate(y, x); !almostEqual(rxy, ryx) {
		t.Fatalf("Correlate not symmetric: %v vs %v", rxy, ryx)
	}
}

func TestCorrelateDegenerate(t *testing.T) {
	if r := Correlate(nil, nil); r != 0 {
		t.Errorf("empty input: r = %v, want 0", r)
	}
	if r := Correlate([]float64{5, 5, 5}, []float64{1, 2, 3}); r != 0 {
		t.Errorf("zero-variance x: r = %v, want 0", r)
	}
	if r := Correlate([]float64{1, 2, 3}, []float64{4, 4, 4}); r != 0 {
		t.Errorf("zero-variance y: r = %v, want 0", r)
	}
}

func TestCorrelateTruncatesToPairedPrefix(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 999}
	y := []float64{2, 4, 6, 8, 10}
	if r := Correlate(x, y); !almostEqual(r, 1) {
		t.Fatalf("paired prefix should be perfectly correlated, got %v", r)
	}
}

func TestRegressPerfectLine(t *testing.T) {
	res, err := Regress([]float64{1, 2, 3, 4, 5}, []float64{2, 4, 6, 8, 10})
	if err != nil {
		t.Fatalf("Regress returned error: %v", err)
	}
	if !almostEqual(res.Slope, 2) || !almostEqual(res.Intercept, 0) {
		t.Fatalf("fit = %v*x + %v, want 2*x + 0", res.Slope, res.Intercept)
	}
	if !res.RSquaredDefined || !almostEqual(res.RSquared, 1) {
		t.Fatalf("R2 = %v (defined=%v), want 1", res.RSquared, res.RSquaredDefined)
	}
	if res.N != 5 {
		t.Errorf("N = %d, want 5", res.N)
	}
}

func TestRegressTooFewPoints(t *testing.T) {
	if _, err := Regress([]float64{1}, []float64{2}); err == nil {
		t.Error("one pair should be an absence, not a result")
	}
	if _, err := Regress(nil, nil); err == nil {
		t.Error("empty input should be an absence")
	}
}

func TestRegressZeroVarianceX(t *testing.T) {
	if _, err := Regress([]float64{4, 4, 4}, []float64{1, 2, 3}); err == nil {
		t.Error("vertical data cannot define a line")
	}
}

func TestRegressConstantY(t *testing.T) {
	res, err := Regress([]float64{1, 2, 3}, []float64{7, 7, 7})
	if err != nil {
		t.Fatalf("constant y should still fit a flat line: %v", err)
	}
	if !almostEqual(res.Slope, 0) || !almostEqual(res.Intercept, 7) {
		t.Fatalf("fit = %v*x + %v, want 0*x + 7", res.Slope, res.Intercept)
	}
	if res.RSquaredDefined {
		t.Error("R2 must be undefined when y has zero variance")
	}
	if res.RSquared != 0 {
		t.Errorf("undefined R2 sentinel = %v, want 0", res.RSquared)
	}
}

func TestCorrelationMatrix(t *testing.T) {
	names := []string{"math", "english", "flat"}
	series := [][]float64{
		{1, 2, 3, 4},
		{2, 4, 6, 8},
		{5, 5, 5, 5},
	}

	m := CorrelationMatrix(names, series)
	if len(m.Values) != 3 {
		t.Fatalf("matrix size = %d, want 3", len(m.Values))
	}
	if !almostEqual(m.Values[0][1], 1) {
		t.Errorf("r(math, english) = %v, want 1", m.Values[0][1])
	}
	if m.Values[0][1] != m.Values[1][0] {
		t.Error("matrix must be symmetric")
	}
	if m.Values[2][2] != 0 {
		t.Errorf("zero-variance diagonal = %v, want 0", m.Values[2][2])
	}
	if !almostEqual(m.Values[0][0], 1) {
		t.Errorf("diagonal = %v, want 1", m.Values[0][0])
	}
}
