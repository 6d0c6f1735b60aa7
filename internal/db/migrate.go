package db

import (
	"context"
	"fmt"
)

// migrations are applied in order at startup. Statements are idempotent
// so repeated startups are safe.
var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS resumes (
		id UUID PRIMARY KEY,
		candidate_name TEXT NOT NULL,
		content TEXT NOT NULL,
		skills JSONB NOT NULL DEFAULT '[]',
		experience_years DOUBLE PRECISION NOT NULL DEFAULT 0,
		contact JSONB,
		embedding JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS jobs (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		required_skills JSONB NOT NULL DEFAULT '[]',
		preferred_skills JSONB NOT NULL DEFAULT '[]',
		required_experience_years DOUBLE PRECISION,
		embedding JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS screening_runs (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		status TEXT NOT NULL DEFAULT 'running',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		completed_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS screening_results (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		run_id UUID NOT NULL REFERENCES screening_runs(id) ON DELETE CASCADE,
		resume_id UUID NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
		candidate_name TEXT NOT NULL,
		skill_match_score DOUBLE PRECISION NOT NULL,
		semantic_similarity_score DOUBLE PRECISION NOT NULL,
		experience_score DOUBLE PRECISION NOT NULL,
		overall_score DOUBLE PRECISION NOT NULL,
		matched_skills JSONB NOT NULL DEFAULT '[]',
		rank INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (run_id, resume_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_screening_results_run_id
		ON screening_results(run_id)`,

	`CREATE INDEX IF NOT EXISTS idx_screening_runs_job_id
		ON screening_runs(job_id)`,
}

// Migrate creates the schema if it does not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range migrations {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
