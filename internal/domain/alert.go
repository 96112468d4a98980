package domain

import "time"

// AlertKind says what tripped the alert condition.
type AlertKind string

const (
	// AlertUnreachable: every sample failed before an HTTP response arrived.
	AlertUnreachable AlertKind = "unreachable"
	// AlertBadStatus: the target answered with a status other than 200.
	AlertBadStatus AlertKind = "bad_status"
	// AlertSlowResponse: status 200 but the average latency exceeded the
	// target's threshold.
	AlertSlowResponse AlertKind = "slow_response"
)

// AlertEvent is the payload handed to the alert channels. It is built and
// dispatched in the same step that produced the ProbeResult and is never
// stored; a target that stays unhealthy alerts again on the next cycle.
type AlertEvent struct {
	Kind              AlertKind `json:"kind"`
	URL               string    `json:"url"`
	StatusCode        int       `json:"status_code"` // 0 when unreachable
	StatusDescription string    `json:"status_description"`
	LatencySeconds    *float64  `json:"latency_seconds,omitempty"`
	Error             string    `json:"error,omitempty"`
	CheckedAt         time.Time `json:"checked_at"`
}
