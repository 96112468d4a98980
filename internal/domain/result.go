package domain

import (
	"net/http"
	"time"
)

// ConnectionFailedDescription is the description carried by results of
// evaluations where no sample got an HTTP response at all.
const ConnectionFailedDescription = "Connection Failed"

// ProbeResult is the outcome of one evaluation of one target. Results feed
// the current display only and are never persisted.
//
// Exactly one of StatusCode and Error is set: StatusCode when at least one
// sample got an HTTP response, Error when every sample failed at the
// transport level.
type ProbeResult struct {
	URL               string    `json:"url"`
	StatusCode        *int      `json:"status_code,omitempty"` // pointer to allow nil
	StatusDescription string    `json:"status_description"`
	AvgLatencySeconds *float64  `json:"avg_latency_seconds,omitempty"` // pointer to allow nil
	CheckedAt         time.Time `json:"checked_at"`
	Error             string    `json:"error,omitempty"`
}

// Healthy reports whether the target answered 200. Slowness is judged
// against the target's threshold by the evaluator, not here.
func (r ProbeResult) Healthy() bool {
	return r.Error == "" && r.StatusCode != nil && *r.StatusCode == http.StatusOK
}
