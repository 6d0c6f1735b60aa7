// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// CandidateProfile is the scorable representation of one candidate: the
// canonical skills extracted from their resume, an experience figure, and
// a semantic embedding of the resume text.
type CandidateProfile struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name,omitempty"`
	Skills          []string  `json:"skills"`
	ExperienceYears float64   `json:"experience_years"`
	Embedding       []float64 `json:"embedding,omitempty"`
}

// TargetProfile is the requirement side of a screening run, derived from a
// job description. RequiredExperienceYears is nil when the posting states
// no experience requirement.
type TargetProfile struct {
	ID                      uuid.UUID `json:"id"`
	Title                   string    `json:"title,omitempty"`
	RequiredSkills          []string  `json:"required_skills"`
	PreferredSkills         []string  `json:"preferred_skills,omitempty"`
	RequiredExperienceYears *float64  `json:"required_experience_years,omitempty"`
	Embedding               []float64 `json:"embedding,omitempty"`
}

// ScoringResult holds the per-signal and combined scores for one
// (candidate, target) pair. Rank is zero until the ranking stage assigns
// it; every other field is written once by the scorer.
type ScoringResult struct {
	CandidateID             uuid.UUID `json:"candidate_id"`
	CandidateName           string    `json:"candidate_name,omitempty"`
	SkillMatchScore         float64   `json:"skill_match_score"`
	SemanticSimilarityScore float64   `json:"semantic_similarity_score"`
	ExperienceScore         float64   `json:"experience_score"`
	OverallScore            float64   `json:"overall_score"`
	MatchedSkills           []string  `json:"matched_skills"`
	Rank                    int       `json:"rank,omitempty"`
}

// Requirements is the result of splitting a job description into
// required and preferred skill sets.
type Requirements struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
}
