package scoring

// Weights holds the relative weight of each scoring signal. Weights are
// renormalized to sum to 1.0 before use; construct via Normalize.
type Weights struct {
	SkillMatch         float64 `json:"skill_match"`
	SemanticSimilarity float64 `json:"semantic_similarity"`
	Experience         float64 `json:"experience"`
}

// DefaultWeights favors skill match and semantic similarity equally, with
// experience as a smaller signal.
func DefaultWeights() Weights {
	return Weights{
		SkillMatch:         0.4,
		SemanticSimilarity: 0.4,
		Experience:         0.2,
	}
}

// Normalize returns a copy of w rescaled to sum to 1.0. Negative weights
// and weight sets summing to zero are rejected.
func (w Weights) Normalize() (Weights, error) {
	if w.SkillMatch < 0 || w.SemanticSimilarity < 0 || w.Experience < 0 {
		return Weights{}, &WeightsError{Message: "weights must be non-negative"}
	}
	total := w.SkillMatch + w.SemanticSimilarity + w.Experience
	if total == 0 {
		return Weights{}, &WeightsError{Message: "weights sum to zero"}
	}
	return Weights{
		SkillMatch:         w.SkillMatch / total,
		SemanticSimilarity: w.SemanticSimilarity / total,
		Experience:         w.Experience / total,
	}, nil
}
