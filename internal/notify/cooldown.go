package notify

import (
	"context"
	"sync"
	"time"

	"github.com/martinlinchr/website-response-status-code-monitoring/internal/domain"
)

type cooldownKey struct {
	URL  string
	Kind domain.AlertKind
}

// Cooldown drops repeats of the same (URL, kind) alert inside the window.
// A zero window disables suppression: every cycle that meets the alert
// condition sends again, which is the monitor's default.
//
// State lives in memory only. After a restart the worst case is one early
// re-alert.
type Cooldown struct {
	Inner Notifier
	Every time.Duration

	mu   sync.Mutex
	last map[cooldownKey]time.Time
}

func NewCooldown(inner Notifier, every time.Duration) *Cooldown {
	return &Cooldown{
		Inner: inner,
		Every: every,
		last:  make(map[cooldownKey]time.Time),
	}
}

func (c *Cooldown) Send(ctx context.Context, ev domain.AlertEvent) error {
	if c.Every <= 0 {
		return c.Inner.Send(ctx, ev)
	}

	key := cooldownKey{URL: ev.URL, Kind: ev.Kind}
	now := time.Now()

	c.mu.Lock()
	if c.last == nil {
		c.last = make(map[cooldownKey]time.Time)
	}
	if prev, ok := c.last[key]; ok && now.Sub(prev) < c.Every {
		c.mu.Unlock()
		return nil
	}
	// Marked before delivery; a failed send does not retry inside the window.
	c.last[key] = now
	c.mu.Unlock()

	return c.Inner.Send(ctx, ev)
}
