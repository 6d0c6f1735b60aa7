// Package db provides PostgreSQL persistence for resumes, jobs, and
// screening results.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Stats returns row counts for the main tables, used by the stats endpoint.
func (db *DB) Stats(ctx context.Context) (*Stats, error) {
	var s Stats
	err := db.pool.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM resumes),
			(SELECT COUNT(*) FROM jobs),
			(SELECT COUNT(*) FROM screening_runs),
			(SELECT COUNT(*) FROM screening_results)`,
	).Scan(&s.Resumes, &s.Jobs, &s.ScreeningRuns, &s.ScreeningResults)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	return &s, nil
}
