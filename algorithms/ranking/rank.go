// Package ranking places a single score inside a reference population:
// tie-aware ordinal rank, a linear best-to-worst percentile, and the
// mapping from percentile to a discrete letter grade.
package ranking

import "sort"

// RankStats describes one score against a population.
type RankStats struct {
	Rank       int     `json:"rank"`       // 1 = best; 0 when the population is empty
	Total      int     `json:"total"`      // population size
	Percentile float64 `json:"percentile"` // 1.0 = best rank, 0.0 = worst rank
}

// Rank computes the ordinal rank of score within population, which must
// already be sorted in descending order; the function does not sort it.
//
// The rank is the first position (1-based) whose value the score meets or
// exceeds, so tied scores all receive the best rank of their tie group. A
// score below every element ranks last. The percentile scales linearly by
// rank position: (total-rank)/(total-1), with a single-element population
// pinned to 1.
func Rank(score float64, population []float64) RankStats {
	total := len(population)
	if total == 0 {
		return RankStats{}
	}

	rank := total
	for i, v := range population {
		if score >= v {
			rank = i + 1
			break
		}
	}

	percentile := 1.0
	if total > 1 {
		percentile = float64(total-rank) / float64(total-1)
	}

	return RankStats{Rank: rank, Total: total, Percentile: percentile}
}

// Descending returns a copy of values sorted from highest to lowest,
// suitable as a Rank reference population. The input is left untouched.
func Descending(values []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	return sorted
}
