package ranking

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

func result(name string, score float64) *types.ScoringResult {
	return &types.ScoringResult{
		CandidateID:   uuid.New(),
		CandidateName: name,
		OverallScore:  score,
	}
}

func TestRank_OrdersAndAssignsRanks(t *testing.T) {
	results := []*types.ScoringResult{
		result("one", 0.75),
		result("two", 0.90),
		result("three", 0.60),
	}

	ranked := Rank(results)

	require.Len(t, ranked, 3)
	assert.Equal(t, "two", ranked[0].CandidateName)
	assert.Equal(t, "one", ranked[1].CandidateName)
	assert.Equal(t, "three", ranked[2].CandidateName)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, 3, ranked[2].Rank)
}

func TestRank_StableOnTies(t *testing.T) {
	first := result("first", 0.5)
	second := result("second", 0.5)
	third := result("third", 0.5)

	ranked := Rank([]*types.ScoringResult{first, second, third})

	assert.Equal(t, []*types.ScoringResult{first, second, third}, ranked)
	assert.Equal(t, 1, first.Rank)
	assert.Equal(t, 2, second.Rank)
	assert.Equal(t, 3, third.Rank)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil))
}

func TestFilterByThreshold(t *testing.T) {
	results := []*types.ScoringResult{
		result("a", 0.8),
		result("b", 0.5),
		result("c", 0.3),
	}

	filtered := FilterByThreshold(results, 0.5)

	require.Len(t, filtered, 2)
	assert.Equal(t, "a", filtered[0].CandidateName)
	assert.Equal(t, "b", filtered[1].CandidateName)
}

func TestFilterByThreshold_DoesNotMutateRank(t *testing.T) {
	r := result("a", 0.8)
	r.Rank = 4

	filtered := FilterByThreshold([]*types.ScoringResult{r}, 0.1)

	assert.Equal(t, 4, filtered[0].Rank)
}

func TestTopK(t *testing.T) {
	results := []*types.ScoringResult{
		result("low", 0.2),
		result("high", 0.9),
		result("mid", 0.5),
	}

	top := TopK(results, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "high", top[0].CandidateName)
	assert.Equal(t, "mid", top[1].CandidateName)
}

func TestTopK_KLargerThanInput(t *testing.T) {
	results := []*types.ScoringResult{result("only", 0.4)}

	assert.Len(t, TopK(results, 10), 1)
}

func TestTopK_NonPositiveK(t *testing.T) {
	results := []*types.ScoringResult{result("only", 0.4)}

	assert.Empty(t, TopK(results, 0))
	assert.Empty(t, TopK(results, -1))
}

func TestTopK_DoesNotReorderInput(t *testing.T) {
	results := []*types.ScoringResult{
		result("low", 0.2),
		result("high", 0.9),
	}

	_ = TopK(results, 1)

	assert.Equal(t, "low", results[0].CandidateName)
	assert.Equal(t, "high", results[1].CandidateName)
}
