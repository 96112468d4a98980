package repo

import (
	"context"

	"github.com/martinlinchr/website-response-status-code-monitoring/internal/domain"
)

// TargetStore is the configuration store port: the set of monitored URLs and
// their thresholds. Probe results never pass through here; they only feed
// the current display.
type TargetStore interface {
	// Upsert inserts the target or, when the URL is already configured,
	// replaces its threshold while keeping the original identity.
	Upsert(ctx context.Context, t *domain.Target) error
	// Remove deletes by URL. Removing an absent URL is a no-op, not an error.
	Remove(ctx context.Context, url string) error
	// List returns all targets in no particular order.
	List(ctx context.Context) ([]domain.Target, error)
	// GetByURL returns nil, nil when the URL is not configured.
	GetByURL(ctx context.Context, url string) (*domain.Target, error)
}
