package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveJob inserts a job description, or updates it when the ID already
// exists.
func (db *DB) SaveJob(ctx context.Context, job *Job) error {
	requiredJSON, err := json.Marshal(job.RequiredSkills)
	if err != nil {
		return fmt.Errorf("failed to marshal required skills: %w", err)
	}
	preferredJSON, err := json.Marshal(job.PreferredSkills)
	if err != nil {
		return fmt.Errorf("failed to marshal preferred skills: %w", err)
	}

	var embeddingJSON []byte
	if job.Embedding != nil {
		embeddingJSON, err = json.Marshal(job.Embedding)
		if err != nil {
			return fmt.Errorf("failed to marshal embedding: %w", err)
		}
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO jobs (id, title, content, required_skills, preferred_skills,
		                   required_experience_years, embedding)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET
			title = $2, content = $3, required_skills = $4,
			preferred_skills = $5, required_experience_years = $6, embedding = $7`,
		job.ID, job.Title, job.Content, requiredJSON, preferredJSON,
		job.RequiredExperienceYears, embeddingJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}
	return nil
}

// GetJob retrieves a job by ID. Returns nil when not found.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*Job, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, title, content, required_skills, preferred_skills,
		        required_experience_years, embedding, created_at
		 FROM jobs WHERE id = $1`,
		id,
	)
	job, err := scanJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// ListJobs returns all stored jobs, newest first.
func (db *DB) ListJobs(ctx context.Context) ([]*Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, content, required_skills, preferred_skills,
		        required_experience_years, embedding, created_at
		 FROM jobs ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// DeleteJob removes a job and its screening runs.
func (db *DB) DeleteJob(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

func scanJob(row pgx.Row) (*Job, error) {
	var j Job
	var requiredJSON, preferredJSON, embeddingJSON []byte

	err := row.Scan(&j.ID, &j.Title, &j.Content, &requiredJSON, &preferredJSON,
		&j.RequiredExperienceYears, &embeddingJSON, &j.CreatedAt)
	if err != nil {
		return nil, err
	}

	if requiredJSON != nil {
		_ = json.Unmarshal(requiredJSON, &j.RequiredSkills)
	}
	if preferredJSON != nil {
		_ = json.Unmarshal(preferredJSON, &j.PreferredSkills)
	}
	if embeddingJSON != nil {
		_ = json.Unmarshal(embeddingJSON, &j.Embedding)
	}

	return &j, nil
}
