package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/ingestion"
)

// Resume is a stored candidate resume with its extracted profile.
type Resume struct {
	ID              uuid.UUID             `json:"id"`
	CandidateName   string                `json:"candidate_name"`
	Content         string                `json:"content"`
	Skills          []string              `json:"skills"`
	ExperienceYears float64               `json:"experience_years"`
	Contact         *ingestion.ContactInfo `json:"contact,omitempty"`
	Embedding       []float64             `json:"embedding,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
}

// Job is a stored job description with its extracted requirements.
type Job struct {
	ID                      uuid.UUID `json:"id"`
	Title                   string    `json:"title"`
	Content                 string    `json:"content"`
	RequiredSkills          []string  `json:"required_skills"`
	PreferredSkills         []string  `json:"preferred_skills"`
	RequiredExperienceYears *float64  `json:"required_experience_years,omitempty"`
	Embedding               []float64 `json:"embedding,omitempty"`
	CreatedAt               time.Time `json:"created_at"`
}

// ScreeningRun records one execution of the screening pipeline for a job.
type ScreeningRun struct {
	ID          uuid.UUID  `json:"id"`
	JobID       uuid.UUID  `json:"job_id"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ScreeningResult is one candidate's scores within a screening run.
type ScreeningResult struct {
	ID                      uuid.UUID `json:"id"`
	RunID                   uuid.UUID `json:"run_id"`
	ResumeID                uuid.UUID `json:"resume_id"`
	CandidateName           string    `json:"candidate_name"`
	SkillMatchScore         float64   `json:"skill_match_score"`
	SemanticSimilarityScore float64   `json:"semantic_similarity_score"`
	ExperienceScore         float64   `json:"experience_score"`
	OverallScore            float64   `json:"overall_score"`
	MatchedSkills           []string  `json:"matched_skills"`
	Rank                    int       `json:"rank"`
	CreatedAt               time.Time `json:"created_at"`
}

// User is a registered API user.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Stats holds row counts for the main tables.
type Stats struct {
	Resumes          int64 `json:"resumes"`
	Jobs             int64 `json:"jobs"`
	ScreeningRuns    int64 `json:"screening_runs"`
	ScreeningResults int64 `json:"screening_results"`
}
