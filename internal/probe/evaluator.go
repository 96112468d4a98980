package probe

import (
	"context"
	"math"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/martinlinchr/website-response-status-code-monitoring/internal/domain"
	"github.com/martinlinchr/website-response-status-code-monitoring/internal/notify"
	"github.com/martinlinchr/website-response-status-code-monitoring/internal/status"
)

const (
	// DefaultSampleCount is the number of GETs per evaluation.
	DefaultSampleCount = 3
	// DefaultSampleTimeout bounds each individual GET.
	DefaultSampleTimeout = 10 * time.Second
)

// HTTPEvaluator samples a target with sequential GET requests and folds the
// observations into one ProbeResult. Status code and latency come from the
// same responses, so the code it reports was actually observed while the
// latency was measured.
type HTTPEvaluator struct {
	Client  *http.Client
	Alerts  notify.Notifier
	Logger  *zap.Logger
	Samples int
}

func NewHTTPEvaluator(timeout time.Duration, samples int, alerts notify.Notifier, logger *zap.Logger) *HTTPEvaluator {
	if timeout <= 0 {
		timeout = DefaultSampleTimeout
	}
	if samples < 1 {
		samples = DefaultSampleCount
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPEvaluator{
		Client:  &http.Client{Timeout: timeout},
		Alerts:  alerts,
		Logger:  logger,
		Samples: samples,
	}
}

// Evaluate runs the sampling pass for one target and decides whether to
// alert. Failed samples contribute nothing; the average covers successful
// samples only. When every sample fails the result carries the last error
// and the alert goes out with the sentinel status 0.
func (e *HTTPEvaluator) Evaluate(ctx context.Context, target string, thresholdSeconds float64) domain.ProbeResult {
	if thresholdSeconds <= 0 {
		thresholdSeconds = domain.DefaultLatencyThresholdSeconds
	}
	samples := e.Samples
	if samples < 1 {
		samples = DefaultSampleCount
	}

	var (
		latencies []float64
		code      int
		answered  bool
		lastErr   error
	)
	for i := 0; i < samples; i++ {
		c, elapsed, err := e.sample(ctx, target)
		if err != nil {
			lastErr = err
			continue
		}
		latencies = append(latencies, elapsed)
		// The representative code is the most recent one observed.
		code = c
		answered = true
	}

	now := time.Now().UTC()

	if !answered {
		res := domain.ProbeResult{
			URL:               target,
			StatusDescription: domain.ConnectionFailedDescription,
			CheckedAt:         now,
			Error:             lastErr.Error(),
		}
		e.dispatch(ctx, domain.AlertEvent{
			Kind:              domain.AlertUnreachable,
			URL:               target,
			StatusCode:        0,
			StatusDescription: domain.ConnectionFailedDescription,
			Error:             res.Error,
			CheckedAt:         now,
		})
		return res
	}

	avg := round2(mean(latencies))
	desc := status.Describe(code)
	res := domain.ProbeResult{
		URL:               target,
		StatusCode:        &code,
		StatusDescription: desc,
		AvgLatencySeconds: &avg,
		CheckedAt:         now,
	}

	switch {
	case code != http.StatusOK:
		e.dispatch(ctx, domain.AlertEvent{
			Kind:              domain.AlertBadStatus,
			URL:               target,
			StatusCode:        code,
			StatusDescription: desc,
			LatencySeconds:    &avg,
			CheckedAt:         now,
		})
	case avg > thresholdSeconds:
		e.dispatch(ctx, domain.AlertEvent{
			Kind:              domain.AlertSlowResponse,
			URL:               target,
			StatusCode:        code,
			StatusDescription: desc,
			LatencySeconds:    &avg,
			CheckedAt:         now,
		})
	}

	return res
}

// sample issues one GET and returns the status code and elapsed seconds.
func (e *HTTPEvaluator) sample(ctx context.Context, target string) (int, float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, 0, err
	}
	start := time.Now()
	resp, err := e.Client.Do(req)
	if err != nil {
		return 0, 0, err
	}
	elapsed := time.Since(start).Seconds()
	resp.Body.Close()
	return resp.StatusCode, elapsed, nil
}

// dispatch is fire-and-forget: a delivery failure is logged, never surfaced
// as a probe failure.
func (e *HTTPEvaluator) dispatch(ctx context.Context, ev domain.AlertEvent) {
	if e.Alerts == nil {
		return
	}
	if err := e.Alerts.Send(ctx, ev); err != nil {
		e.Logger.Warn("alert_send_failed",
			zap.String("url", ev.URL),
			zap.String("kind", string(ev.Kind)),
			zap.Error(err),
		)
	}
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// round2 keeps two decimals, the precision the status board displays.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
