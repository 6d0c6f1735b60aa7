// Package ranking orders scoring results, assigns ranks, and produces
// human-readable explanations.
package ranking

import (
	"sort"

	"github.com/jonathan/resume-screener/internal/types"
)

// Rank sorts results by overall score, highest first, and assigns 1-based
// ranks. The sort is stable: ties keep their original input order, so
// repeated runs over identical scores produce the same ranking. Ranking is
// the single serialization point of a screening run; it must only be
// called once all results for a target are in hand.
func Rank(results []*types.ScoringResult) []*types.ScoringResult {
	sorted := make([]*types.ScoringResult, len(results))
	copy(sorted, results)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OverallScore > sorted[j].OverallScore
	})

	for i, result := range sorted {
		result.Rank = i + 1
	}
	return sorted
}

// FilterByThreshold returns the results whose overall score meets the
// threshold. Ranks are left untouched.
func FilterByThreshold(results []*types.ScoringResult, threshold float64) []*types.ScoringResult {
	filtered := make([]*types.ScoringResult, 0, len(results))
	for _, result := range results {
		if result.OverallScore >= threshold {
			filtered = append(filtered, result)
		}
	}
	return filtered
}

// TopK returns the k highest-scoring results. The sort order is recomputed
// here rather than trusting any prior ranking call.
func TopK(results []*types.ScoringResult, k int) []*types.ScoringResult {
	if k <= 0 {
		return []*types.ScoringResult{}
	}

	sorted := make([]*types.ScoringResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OverallScore > sorted[j].OverallScore
	})

	if k > len(sorted) {
		k = len(sorted)
	}
	return sorted[:k]
}
