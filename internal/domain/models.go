package domain

import "time"

// DefaultLatencyThresholdSeconds is used for targets added without a
// positive threshold of their own.
const DefaultLatencyThresholdSeconds = 2.0

// Target is one monitored website: a URL plus the average-latency level
// above which a healthy response still raises an alert. The URL is the
// identity; ID is a surrogate assigned by the store on first insert.
type Target struct {
	ID                      string    `json:"id"`
	URL                     string    `json:"url"`
	LatencyThresholdSeconds float64   `json:"latency_threshold_seconds"`
	CreatedAt               time.Time `json:"created_at"`
}

// EffectiveThreshold returns the configured threshold, falling back to the
// default when none was set.
func (t Target) EffectiveThreshold() float64 {
	if t.LatencyThresholdSeconds > 0 {
		return t.LatencyThresholdSeconds
	}
	return DefaultLatencyThresholdSeconds
}
