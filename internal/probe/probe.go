// Package probe evaluates monitored URLs with plain HTTP GET requests.
package probe

import (
	"context"

	"github.com/martinlinchr/website-response-status-code-monitoring/internal/domain"
)

// Evaluator turns one target into a ProbeResult. Raising the alert for an
// unhealthy result is part of the evaluation, not a separate step; network
// trouble surfaces inside the result, never as a returned error.
type Evaluator interface {
	Evaluate(ctx context.Context, url string, thresholdSeconds float64) domain.ProbeResult
}
