// Package store provides PostgreSQL persistence for analysis reports.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a PostgreSQL connection pool
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the reports table if it does not exist
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS analysis_reports (
			cache_key  TEXT PRIMARY KEY,
			content    JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// GetReport retrieves a serialized report by cache key. A missing key returns
// nil content and no error.
func (s *Store) GetReport(ctx context.Context, key string) ([]byte, error) {
	var content []byte
	err := s.pool.QueryRow(ctx,
		`SELECT content FROM analysis_reports WHERE cache_key = $1`,
		key,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report %s: %w", key, err)
	}
	return content, nil
}

// PutReport stores a serialized report under its cache key, replacing any
// existing entry. Last writer wins.
func (s *Store) PutReport(ctx context.Context, key string, content []byte) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO analysis_reports (cache_key, content)
		 VALUES ($1, $2)
		 ON CONFLICT (cache_key) DO UPDATE SET content = $2, created_at = NOW()`,
		key, content,
	)
	if err != nil {
		return fmt.Errorf("failed to put report %s: %w", key, err)
	}
	return nil
}

// DeleteReportsByPrefix removes cached reports whose key matches an older
// cache version prefix.
func (s *Store) DeleteReportsByPrefix(ctx context.Context, prefix string) (int64, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM analysis_reports WHERE cache_key LIKE $1 || '%'`,
		prefix,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete reports with prefix %s: %w", prefix, err)
	}
	return tag.RowsAffected(), nil
}
