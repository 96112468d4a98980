// Package postgres backs the TargetStore with pgx when DATABASE_URL is set.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/martinlinchr/website-response-status-code-monitoring/internal/domain"
	"github.com/martinlinchr/website-response-status-code-monitoring/internal/repo"
)

var _ repo.TargetStore = (*Store)(nil)

type Store struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func New(ctx context.Context, dsn string, log *zap.Logger) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{pool: pool, log: log}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Migrate creates the schema when missing. Only the target configuration is
// stored; probe results are display state and never reach the database.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS targets (
  id                        TEXT PRIMARY KEY,
  url                       TEXT NOT NULL UNIQUE,
  latency_threshold_seconds DOUBLE PRECISION NOT NULL DEFAULT 2.0,
  created_at                TIMESTAMPTZ NOT NULL DEFAULT now()
);`)
	if err != nil {
		return fmt.Errorf("migrate targets: %w", err)
	}
	s.log.Info("schema_ready")
	return nil
}

func (s *Store) Upsert(ctx context.Context, t *domain.Target) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	if t.LatencyThresholdSeconds <= 0 {
		t.LatencyThresholdSeconds = domain.DefaultLatencyThresholdSeconds
	}
	// RETURNING reflects the row as stored: a conflicting URL keeps its
	// original id and created_at, and the caller sees those.
	row := s.pool.QueryRow(ctx,
		`INSERT INTO targets (id, url, latency_threshold_seconds, created_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (url) DO UPDATE
		   SET latency_threshold_seconds = EXCLUDED.latency_threshold_seconds
		 RETURNING id, created_at`,
		t.ID, t.URL, t.LatencyThresholdSeconds, t.CreatedAt,
	)
	if err := row.Scan(&t.ID, &t.CreatedAt); err != nil {
		return fmt.Errorf("upsert target: %w", err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, url string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM targets WHERE url = $1`, url)
	if err != nil {
		return fmt.Errorf("remove target: %w", err)
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]domain.Target, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, url, latency_threshold_seconds, created_at FROM targets`)
	if err != nil {
		return nil, fmt.Errorf("list targets: %w", err)
	}
	defer rows.Close()

	var out []domain.Target
	for rows.Next() {
		var t domain.Target
		if err := rows.Scan(&t.ID, &t.URL, &t.LatencyThresholdSeconds, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan target: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) GetByURL(ctx context.Context, url string) (*domain.Target, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, url, latency_threshold_seconds, created_at FROM targets WHERE url = $1`, url)

	var t domain.Target
	if err := row.Scan(&t.ID, &t.URL, &t.LatencyThresholdSeconds, &t.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get target: %w", err)
	}
	return &t, nil
}
