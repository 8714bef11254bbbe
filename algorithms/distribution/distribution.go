// Package distribution computes the per-column distribution views used by
// the visualization layer: pass/excellence tallies, fixed score bands,
// fixed-bin histograms and 1.5xIQR box plots.
//
// All functions treat their input slice as read-only; anything that needs
// order sorts a copy.
package distribution

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Config carries the distribution constants. The defaults mirror common
// grading practice (90% excellence line, 60% pass line) but every value is
// a knob because real grading scales vary by institution.
type Config struct {
	// ExcellentRatio and PassRatio are fractions of the full mark. A score
	// must clear the line strictly; a score sitting exactly on the pass
	// line counts as failing.
	ExcellentRatio float64 `json:"excellent_ratio" yaml:"excellent_ratio"`
	PassRatio      float64 `json:"pass_ratio" yaml:"pass_ratio"`

	// BandBounds are the score-band lower bounds as fractions of the full
	// mark, ordered high to low. N bounds produce N+1 bands; the last band
	// catches everything below the final bound.
	BandBounds []float64 `json:"band_bounds" yaml:"band_bounds"`

	// BinCount is the histogram bin count.
	BinCount int `json:"bin_count" yaml:"bin_count"`

	// OutlierK is the IQR multiplier for box-plot whisker bounds.
	OutlierK float64 `json:"outlier_k" yaml:"outlier_k"`
}

// DefaultConfig returns the documented defaults: 0.90/0.60 pass lines, six
// bands at 90/85/80/70/60 percent, 10 histogram bins, 1.5xIQR whiskers.
func DefaultConfig() Config {
	return Config{
		ExcellentRatio: 0.90,
		PassRatio:      0.60,
		BandBounds:     []float64{0.90, 0.85, 0.80, 0.70, 0.60},
		BinCount:       10,
		OutlierK:       1.5,
	}
}

// Analyzer computes distribution statistics with a fixed configuration.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer creates an analyzer with DefaultConfig.
func NewAnalyzer() *Analyzer {
	return &Analyzer{cfg: DefaultConfig()}
}

// NewAnalyzerWithConfig creates an analyzer with custom constants.
func NewAnalyzerWithConfig(cfg Config) *Analyzer {
	if cfg.BinCount <= 0 {
		cfg.BinCount = DefaultConfig().BinCount
	}
	if cfg.OutlierK <= 0 {
		cfg.OutlierK = DefaultConfig().OutlierK
	}
	return &Analyzer{cfg: cfg}
}

// Config returns the analyzer's constants.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// PassStats tallies scores against the excellence and pass lines.
type PassStats struct {
	Excellent int `json:"excellent"`
	Pass      int `json:"pass"`
	Fail      int `json:"fail"`
	Total     int `json:"total"`
}

// PassStats counts excellent/pass/fail against fullMark. A non-positive
// full mark makes the thresholds meaningless (every score would clear a
// zero line), so ok is false and callers must skip the column. Total-score
// columns carry a guessed full mark of 0 exactly so they land here.
func (a *Analyzer) PassStats(values []float64, fullMark float64) (PassStats, bool) {
	if fullMark <= 0 {
		return PassStats{}, false
	}

	stats := PassStats{Total: len(values)}
	excellentLine := a.cfg.ExcellentRatio * fullMark
	passLine := a.cfg.PassRatio * fullMark

	for _, v := range values {
		switch {
		case v > excellentLine:
			stats.Excellent++
		case v > passLine:
			stats.Pass++
		default:
			stats.Fail++
		}
	}
	return stats, true
}

// Band is one score band with its ratio bounds relative to the full mark.
// High is +Inf for the top band and Low is -Inf for the bottom band.
type Band struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// ScoreBands buckets values by value/fullMark into the configured bands,
// ordered best to worst. ok is false when fullMark is non-positive.
func (a *Analyzer) ScoreBands(values []float64, fullMark float64) ([]Band, bool) {
	if fullMark <= 0 || len(a.cfg.BandBounds) == 0 {
		return nil, false
	}

	bounds := a.cfg.BandBounds
	bands := make([]Band, len(bounds)+1)
	for i, b := range bounds {
		bands[i].Low = b
		if i == 0 {
			bands[i].High = math.Inf(1)
		} else {
			bands[i].High = bounds[i-1]
		}
	}
	bands[len(bounds)].Low = math.Inf(-1)
	bands[len(bounds)].High = bounds[len(bounds)-1]

	for _, v := range values {
		ratio := v / fullMark
		idx := len(bounds) // bottom band unless a bound is reached
		for i, b := range bounds {
			if ratio >= b {
				idx = i
				break
			}
		}
		bands[idx].Count++
	}
	return bands, true
}

// Bin is one histogram bucket covering [Low, High); the top bucket also
// absorbs the maximum value.
type Bin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// Histogram buckets values into the configured number of equal-width bins.
// The range is [floor(min), ceil(max)] and the bin width never drops below
// 1, so integer score sets keep whole-point bins. Every bin is returned in
// order even when empty. An empty input yields nil.
func (a *Analyzer) Histogram(values []float64) []Bin {
	if len(values) == 0 {
		return nil
	}

	binCount := a.cfg.BinCount
	low := math.Floor(floats.Min(values))
	high := math.Ceil(floats.Max(values))
	binSize := (high - low) / float64(binCount)
	if binSize < 1 {
		binSize = 1
	}

	bins := make([]Bin, binCount)
	for i := range bins {
		bins[i].Low = low + float64(i)*binSize
		bins[i].High = low + float64(i+1)*binSize
	}

	for _, v := range values {
		idx := int(math.Floor((v - low) / binSize))
		if idx >= binCount {
			idx = binCount - 1
		}
		if idx < 0 {
			continue
		}
		bins[idx].Count++
	}
	return bins
}

// BoxPlotStats is the five-number summary plus the values flagged as
// outliers. Min and Max are the extremes of the in-bound values, not of
// the raw data.
type BoxPlotStats struct {
	Min      float64   `json:"min"`
	Q1       float64   `json:"q1"`
	Median   float64   `json:"median"`
	Q3       float64   `json:"q3"`
	Max      float64   `json:"max"`
	Outliers []float64 `json:"outliers"`
}

// BoxPlot computes quartiles by direct index (floor(n*q), no interpolation)
// on an ascending copy of values, then flags everything outside
// [q1-K*IQR, q3+K*IQR] as an outlier. When the whole dataset is out of
// bounds the whiskers collapse onto q1 and q3.
func (a *Analyzer) BoxPlot(values []float64) BoxPlotStats {
	n := len(values)
	if n == 0 {
		return BoxPlotStats{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	q1 := sorted[quartileIndex(n, 0.25)]
	median := sorted[quartileIndex(n, 0.50)]
	q3 := sorted[quartileIndex(n, 0.75)]

	iqr := q3 - q1
	lowerBound := q1 - a.cfg.OutlierK*iqr
	upperBound := q3 + a.cfg.OutlierK*iqr

	stats := BoxPlotStats{Q1: q1, Median: median, Q3: q3, Outliers: []float64{}}

	haveInBound := false
	for _, v := range sorted {
		if v < lowerBound || v > upperBound {
			stats.Outliers = append(stats.Outliers, v)
			continue
		}
		if !haveInBound {
			stats.Min = v
			haveInBound = true
		}
		stats.Max = v
	}

	if !haveInBound {
		stats.Min = q1
		stats.Max = q3
	}
	return stats
}

func quartileIndex(n int, q float64) int {
	idx := int(float64(n) * q)
	if idx >= n {
		idx = n - 1
	}
	return idx
}
