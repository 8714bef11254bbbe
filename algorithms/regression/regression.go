// Package regression computes pairwise Pearson correlation and simple
// least-squares linear regression between numeric series.
//
// Inputs of unequal length are truncated to the shorter one so the series
// stay row-paired. Degenerate inputs never panic: zero variance collapses
// a correlation to 0, and a regression over fewer than two pairs is an
// absence, reported as an error.
package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Result is a fitted line y = Slope*x + Intercept with its goodness of fit.
type Result struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`

	// RSquared is 1 - residualSS/totalSS. When every y is identical the
	// ratio is 0/0 and R-squared has no defined value; RSquaredDefined is
	// false and RSquared holds the 0 sentinel.
	RSquared        float64 `json:"r_squared"`
	RSquaredDefined bool    `json:"r_squared_defined"`

	N int `json:"n"` // number of paired points used
}

// Correlate returns the Pearson correlation coefficient of the paired
// prefix of x and y. Empty input or a zero-variance series returns 0
// rather than an error; the rendering layer treats both as "no linear
// relationship to show".
func Correlate(x, y []float64) float64 {
	n := min(len(x), len(y))
	if n == 0 {
		return 0
	}

	r := stat.Correlation(x[:n], y[:n], nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

// Regress fits a least-squares line through the paired prefix of x and y.
// Fewer than two pairs cannot define a line, and neither can an x series
// with zero variance; both return an error rather than a zero-valued fit.
func Regress(x, y []float64) (*Result, error) {
	n := min(len(x), len(y))
	if n < 2 {
		return nil, fmt.Errorf("regression requires at least 2 paired points, got %d", n)
	}

	xs, ys := x[:n], y[:n]
	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return nil, fmt.Errorf("regression undefined: x has zero variance")
	}

	res := &Result{Slope: slope, Intercept: intercept, N: n}

	r2 := stat.RSquared(xs, ys, nil, intercept, slope)
	if math.IsNaN(r2) || math.IsInf(r2, 0) {
		res.RSquared = 0
		res.RSquaredDefined = false
	} else {
		res.RSquared = r2
		res.RSquaredDefined = true
	}
	return res, nil
}

// Matrix is a symmetric Pearson correlation matrix over named series.
type Matrix struct {
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"` // Values[i][j] = r(series i, series j)
}

// CorrelationMatrix builds the full pairwise matrix. The diagonal is
// computed, not assumed, so a zero-variance column shows 0 against itself
// exactly as it does against everything else.
func CorrelationMatrix(names []string, series [][]float64) *Matrix {
	m := &Matrix{
		Columns: append([]string(nil), names...),
		Values:  make([][]float64, len(series)),
	}
	for i := range series {
		m.Values[i] = make([]float64, len(series))
	}
	for i := range series {
		for j := i; j < len(series); j++ {
			r := Correlate(series[i], series[j])
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m
}
