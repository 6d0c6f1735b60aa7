package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveResume inserts a resume, or updates it when the ID already exists.
func (db *DB) SaveResume(ctx context.Context, resume *Resume) error {
	skillsJSON, err := json.Marshal(resume.Skills)
	if err != nil {
		return fmt.Errorf("failed to marshal skills: %w", err)
	}

	var contactJSON []byte
	if resume.Contact != nil {
		contactJSON, err = json.Marshal(resume.Contact)
		if err != nil {
			return fmt.Errorf("failed to marshal contact info: %w", err)
		}
	}

	var embeddingJSON []byte
	if resume.Embedding != nil {
		embeddingJSON, err = json.Marshal(resume.Embedding)
		if err != nil {
			return fmt.Errorf("failed to marshal embedding: %w", err)
		}
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO resumes (id, candidate_name, content, skills, experience_years, contact, embedding)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET
			candidate_name = $2, content = $3, skills = $4,
			experience_years = $5, contact = $6, embedding = $7`,
		resume.ID, resume.CandidateName, resume.Content, skillsJSON,
		resume.ExperienceYears, contactJSON, embeddingJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}
	return nil
}

// GetResume retrieves a resume by ID. Returns nil when not found.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*Resume, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, candidate_name, content, skills, experience_years,
		        contact, embedding, created_at
		 FROM resumes WHERE id = $1`,
		id,
	)
	resume, err := scanResume(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return resume, nil
}

// ListResumes returns all stored resumes, newest first.
func (db *DB) ListResumes(ctx context.Context) ([]*Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, candidate_name, content, skills, experience_years,
		        contact, embedding, created_at
		 FROM resumes ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []*Resume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, resume)
	}
	return resumes, rows.Err()
}

// DeleteResume removes a resume and its screening results.
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	return nil
}

func scanResume(row pgx.Row) (*Resume, error) {
	var r Resume
	var skillsJSON, contactJSON, embeddingJSON []byte

	err := row.Scan(&r.ID, &r.CandidateName, &r.Content, &skillsJSON,
		&r.ExperienceYears, &contactJSON, &embeddingJSON, &r.CreatedAt)
	if err != nil {
		return nil, err
	}

	if skillsJSON != nil {
		_ = json.Unmarshal(skillsJSON, &r.Skills)
	}
	if contactJSON != nil {
		_ = json.Unmarshal(contactJSON, &r.Contact)
	}
	if embeddingJSON != nil {
		_ = json.Unmarshal(embeddingJSON, &r.Embedding)
	}

	return &r, nil
}
