// Package notify delivers alert events to the configured channels.
package notify

import (
	"context"

	"go.uber.org/multierr"

	"github.com/martinlinchr/website-response-status-code-monitoring/internal/domain"
)

// Notifier delivers one alert. Implementations format the event themselves;
// callers only decide that an alert is warranted.
type Notifier interface {
	Send(ctx context.Context, ev domain.AlertEvent) error
}

// Multi fans an alert out to every channel. Delivery is attempted on all of
// them regardless of individual failures; the errors come back combined.
type Multi []Notifier

func (m Multi) Send(ctx context.Context, ev domain.AlertEvent) error {
	var errs error
	for _, n := range m {
		if n == nil {
			continue
		}
		errs = multierr.Append(errs, n.Send(ctx, ev))
	}
	return errs
}
