// Package scheduler drives evaluation cycles and keeps the current display
// snapshot of probe results.
package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/martinlinchr/website-response-status-code-monitoring/internal/domain"
	"github.com/martinlinchr/website-response-status-code-monitoring/internal/probe"
	"github.com/martinlinchr/website-response-status-code-monitoring/internal/repo"
)

// Runner evaluates every configured target on a cron schedule. Targets are
// probed strictly one after another and cycles never overlap, so the monitor
// issues at most one request at a time.
type Runner struct {
	Logger  *zap.Logger
	Targets repo.TargetStore
	Eval    probe.Evaluator

	cron    *cron.Cron
	cycleMu sync.Mutex

	mu     sync.RWMutex
	latest map[string]domain.ProbeResult // keyed by URL
}

func NewRunner(logger *zap.Logger, ts repo.TargetStore, ev probe.Evaluator) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		Logger:  logger,
		Targets: ts,
		Eval:    ev,
		latest:  make(map[string]domain.ProbeResult),
	}
}

// Start schedules RunCycle under the given cron spec ("@every 30s" or a
// five-field expression) and kicks off one immediate pass in the background.
func (r *Runner) Start(schedule string) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		r.RunCycle(context.Background())
	}); err != nil {
		return fmt.Errorf("schedule %q: %w", schedule, err)
	}
	r.cron = c
	c.Start()
	r.Logger.Info("scheduler_started", zap.String("schedule", schedule))

	go r.RunCycle(context.Background())
	return nil
}

// Stop halts the cron trigger and waits for a running cycle to finish.
func (r *Runner) Stop() {
	if r.cron == nil {
		return
	}
	<-r.cron.Stop().Done()
	// The immediate boot pass is not a cron job; wait for it too.
	r.cycleMu.Lock()
	r.cycleMu.Unlock()
	r.Logger.Info("scheduler_stopped")
}

// RunCycle evaluates all targets in sequence and replaces the snapshot with
// the fresh results. A trigger that fires while a cycle is running waits its
// turn instead of probing concurrently.
func (r *Runner) RunCycle(ctx context.Context) []domain.ProbeResult {
	r.cycleMu.Lock()
	defer r.cycleMu.Unlock()

	targets, err := r.Targets.List(ctx)
	if err != nil {
		r.Logger.Warn("cycle_list_error", zap.Error(err))
		return nil
	}

	results := make([]domain.ProbeResult, 0, len(targets))
	for _, t := range targets {
		res := r.Eval.Evaluate(ctx, t.URL, t.LatencyThresholdSeconds)
		results = append(results, res)

		code := 0
		if res.StatusCode != nil {
			code = *res.StatusCode
		}
		r.Logger.Debug("target_checked",
			zap.String("url", t.URL),
			zap.Int("status", code),
			zap.Bool("healthy", res.Healthy()),
		)
	}

	next := make(map[string]domain.ProbeResult, len(results))
	for _, res := range results {
		next[res.URL] = res
	}
	r.mu.Lock()
	r.latest = next
	r.mu.Unlock()

	r.Logger.Info("cycle_complete", zap.Int("targets", len(results)))
	return results
}

// EvaluateOne probes a single target right now and merges the result into
// the snapshot. Used for instant feedback when a target is added.
func (r *Runner) EvaluateOne(ctx context.Context, t domain.Target) domain.ProbeResult {
	res := r.Eval.Evaluate(ctx, t.URL, t.LatencyThresholdSeconds)

	r.mu.Lock()
	if r.latest == nil {
		r.latest = make(map[string]domain.ProbeResult)
	}
	r.latest[res.URL] = res
	r.mu.Unlock()
	return res
}

// Latest returns the snapshot sorted by URL for a stable display.
func (r *Runner) Latest() []domain.ProbeResult {
	r.mu.RLock()
	out := make([]domain.ProbeResult, 0, len(r.latest))
	for _, res := range r.latest {
		out = append(out, res)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].URL < out[j].URL })
	return out
}

// Forget drops a removed target's row so the display does not keep showing
// it until the next cycle.
func (r *Runner) Forget(url string) {
	r.mu.Lock()
	delete(r.latest, url)
	r.mu.Unlock()
}
