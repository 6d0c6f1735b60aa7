package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-screener/internal/types"
)

// CreateScreeningRun creates a new screening run record and returns its ID.
func (db *DB) CreateScreeningRun(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO screening_runs (job_id, status)
		 VALUES ($1, 'running')
		 RETURNING id`,
		jobID,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create screening run: %w", err)
	}
	return id, nil
}

// CompleteScreeningRun marks a screening run as finished with the given
// status.
func (db *DB) CompleteScreeningRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE screening_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete screening run: %w", err)
	}
	return nil
}

// SaveScreeningResults stores the ranked results of one run. Re-running a
// screen for the same run overwrites each candidate's previous row.
func (db *DB) SaveScreeningResults(ctx context.Context, runID uuid.UUID, results []*types.ScoringResult) error {
	for _, result := range results {
		matchedJSON, err := json.Marshal(result.MatchedSkills)
		if err != nil {
			return fmt.Errorf("failed to marshal matched skills: %w", err)
		}

		_, err = db.pool.Exec(ctx,
			`INSERT INTO screening_results
				(run_id, resume_id, candidate_name, skill_match_score,
				 semantic_similarity_score, experience_score, overall_score,
				 matched_skills, rank)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			 ON CONFLICT (run_id, resume_id) DO UPDATE SET
				candidate_name = $3, skill_match_score = $4,
				semantic_similarity_score = $5, experience_score = $6,
				overall_score = $7, matched_skills = $8, rank = $9`,
			runID, result.CandidateID, result.CandidateName,
			result.SkillMatchScore, result.SemanticSimilarityScore,
			result.ExperienceScore, result.OverallScore, matchedJSON, result.Rank,
		)
		if err != nil {
			return fmt.Errorf("failed to save screening result: %w", err)
		}
	}
	return nil
}

// GetScreeningRun retrieves a run by ID. Returns nil when not found.
func (db *DB) GetScreeningRun(ctx context.Context, runID uuid.UUID) (*ScreeningRun, error) {
	var r ScreeningRun
	err := db.pool.QueryRow(ctx,
		`SELECT id, job_id, status, created_at, completed_at
		 FROM screening_runs WHERE id = $1`,
		runID,
	).Scan(&r.ID, &r.JobID, &r.Status, &r.CreatedAt, &r.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get screening run: %w", err)
	}
	return &r, nil
}

// GetScreeningResults returns the stored results of a run ordered by rank.
func (db *DB) GetScreeningResults(ctx context.Context, runID uuid.UUID) ([]*ScreeningResult, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, run_id, resume_id, candidate_name, skill_match_score,
		        semantic_similarity_score, experience_score, overall_score,
		        matched_skills, rank, created_at
		 FROM screening_results WHERE run_id = $1 ORDER BY rank ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list screening results: %w", err)
	}
	defer rows.Close()

	var results []*ScreeningResult
	for rows.Next() {
		var r ScreeningResult
		var matchedJSON []byte
		err := rows.Scan(&r.ID, &r.RunID, &r.ResumeID, &r.CandidateName,
			&r.SkillMatchScore, &r.SemanticSimilarityScore, &r.ExperienceScore,
			&r.OverallScore, &matchedJSON, &r.Rank, &r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan screening result: %w", err)
		}
		if matchedJSON != nil {
			_ = json.Unmarshal(matchedJSON, &r.MatchedSkills)
		}
		results = append(results, &r)
	}
	return results, rows.Err()
}
