package scoring

import (
	"sort"

	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// Skill-match blend: meeting stated requirements counts for more than
	// raw lexical overlap, so requirement-irrelevant skill noise is only
	// mildly penalized.
	coverageWeight = 0.7
	jaccardWeight  = 0.3

	// defaultMaxYears is the normalization ceiling used when a target
	// states no experience requirement.
	defaultMaxYears = 20.0

	// Excess experience earns a small bonus, capped, before the sub-score
	// is clamped back to 1.0.
	excessYearsPerBonus = 5.0
	maxExperienceBonus  = 0.2
)

// Scorer computes scoring results for candidate/target pairs. The weights
// are normalized at construction and never mutated, so one Scorer is safe
// for concurrent use across candidates.
type Scorer struct {
	weights Weights
}

// NewScorer creates a Scorer with the given weights. The weights are
// renormalized to sum to 1.0; a malformed weight set is rejected.
func NewScorer(weights Weights) (*Scorer, error) {
	normalized, err := weights.Normalize()
	if err != nil {
		return nil, err
	}
	return &Scorer{weights: normalized}, nil
}

// Weights returns the normalized weights in use.
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Score computes all sub-scores and the weighted overall score for one
// candidate against one target. Each sub-score and the overall score lie
// in [0, 1]. Rank is left unset; the ranking stage assigns it.
func (s *Scorer) Score(candidate *types.CandidateProfile, target *types.TargetProfile) (*types.ScoringResult, error) {
	skillScore, matched := SkillMatchScore(candidate.Skills, target.RequiredSkills)

	semanticScore, err := SemanticSimilarityScore(candidate.Embedding, target.Embedding)
	if err != nil {
		return nil, err
	}

	experienceScore := ExperienceScore(candidate.ExperienceYears, target.RequiredExperienceYears)

	overall := s.weights.SkillMatch*skillScore +
		s.weights.SemanticSimilarity*semanticScore +
		s.weights.Experience*experienceScore

	return &types.ScoringResult{
		CandidateID:             candidate.ID,
		CandidateName:           candidate.Name,
		SkillMatchScore:         skillScore,
		SemanticSimilarityScore: semanticScore,
		ExperienceScore:         experienceScore,
		OverallScore:            overall,
		MatchedSkills:           matched,
	}, nil
}

// SkillMatchScore blends requirement coverage with Jaccard similarity:
// 0.7·|C∩J|/|J| + 0.3·|C∩J|/|C∪J|. An empty requirement set is degenerate
// but valid and scores a full 1.0 with no matched skills.
func SkillMatchScore(candidateSkills, requiredSkills []string) (float64, []string) {
	required := toSet(requiredSkills)
	if len(required) == 0 {
		return 1.0, []string{}
	}

	candidate := toSet(candidateSkills)

	matched := make([]string, 0, len(required))
	for skill := range candidate {
		if _, ok := required[skill]; ok {
			matched = append(matched, skill)
		}
	}
	sort.Strings(matched)

	intersection := float64(len(matched))
	union := float64(len(candidate) + len(required) - len(matched))

	coverage := intersection / float64(len(required))
	jaccard := 0.0
	if union > 0 {
		jaccard = intersection / union
	}

	return coverageWeight*coverage + jaccardWeight*jaccard, matched
}

// ExperienceScore maps candidate years against an optional requirement.
// With no requirement the score is years normalized by a fixed ceiling.
// Meeting the requirement earns a capped bonus for excess years, but the
// sub-score is clamped to 1.0, so the bonus is currently inert; the clamp
// is kept until the ceiling policy is revisited. Below the requirement the
// score falls off linearly.
func ExperienceScore(years float64, requiredYears *float64) float64 {
	if requiredYears == nil {
		score := years / defaultMaxYears
		if score > 1.0 {
			return 1.0
		}
		return score
	}

	required := *requiredYears
	if required <= 0 {
		return 1.0
	}

	if years >= required {
		bonus := (years - required) / excessYearsPerBonus
		if bonus > maxExperienceBonus {
			bonus = maxExperienceBonus
		}
		score := 1.0 + bonus
		if score > 1.0 {
			score = 1.0
		}
		return score
	}

	return years / required
}

func toSet(skillList []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skillList))
	for _, s := range skillList {
		normalized := skills.Normalize(s)
		if normalized == "" {
			continue
		}
		set[normalized] = struct{}{}
	}
	return set
}
