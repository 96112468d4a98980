// Package memory is the zero-dependency TargetStore used when no database
// is configured. Everything is lost on restart, which suits throwaway and
// test setups.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/martinlinchr/website-response-status-code-monitoring/internal/domain"
	"github.com/martinlinchr/website-response-status-code-monitoring/internal/repo"
)

var _ repo.TargetStore = (*Store)(nil)

type Store struct {
	mu      sync.RWMutex
	targets map[string]domain.Target // keyed by URL
}

func New() *Store {
	return &Store{targets: make(map[string]domain.Target)}
}

func (m *Store) Upsert(ctx context.Context, t *domain.Target) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t.LatencyThresholdSeconds <= 0 {
		t.LatencyThresholdSeconds = domain.DefaultLatencyThresholdSeconds
	}
	if prev, ok := m.targets[t.URL]; ok {
		// Same URL keeps its identity; only the threshold changes.
		t.ID = prev.ID
		t.CreatedAt = prev.CreatedAt
	} else {
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = time.Now().UTC()
		}
	}
	m.targets[t.URL] = *t
	return nil
}

func (m *Store) Remove(ctx context.Context, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.targets, url)
	return nil
}

func (m *Store) List(ctx context.Context) ([]domain.Target, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Target, 0, len(m.targets))
	for _, t := range m.targets {
		out = append(out, t)
	}
	return out, nil
}

func (m *Store) GetByURL(ctx context.Context, url string) (*domain.Target, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.targets[url]
	if !ok {
		return nil, nil
	}
	cp := t
	return &cp, nil
}
