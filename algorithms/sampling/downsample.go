// Package sampling reduces result series for rendering. Downsampling is a
// display aid only; every statistic in this repository is computed on the
// full series before any reduction happens.
package sampling

import "math"

// DefaultLimit is the point budget used when a caller passes no limit.
const DefaultLimit = 500

// Downsample reduces series to at most limit points by uniform stride:
// step = ceil(n/limit), keeping the elements whose index is a multiple of
// the step. The selection is deterministic and order-preserving. A series
// already within the limit is returned as-is, which makes the operation
// idempotent once under the limit. A non-positive limit falls back to
// DefaultLimit.
func Downsample(series []float64, limit int) []float64 {
	if limit <= 0 {
		limit = DefaultLimit
	}
	n := len(series)
	if n <= limit {
		return series
	}

	step := int(math.Ceil(float64(n) / float64(limit)))
	out := make([]float64, 0, (n+step-1)/step)
	for i := 0; i < n; i += step {
		out = append(out, series[i])
	}
	return out
}
