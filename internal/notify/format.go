package notify

import (
	"fmt"

	"github.com/martinlinchr/website-response-status-code-monitoring/internal/domain"
	"github.com/martinlinchr/website-response-status-code-monitoring/internal/status"
)

// timeLayout is the timestamp format shown on the status board and in alerts.
const timeLayout = "2006-01-02 15:04:05"

func subjectFor(ev domain.AlertEvent) string {
	switch ev.Kind {
	case domain.AlertUnreachable:
		return fmt.Sprintf("Website Monitor: %s is UNREACHABLE", ev.URL)
	case domain.AlertSlowResponse:
		return fmt.Sprintf("Website Monitor: %s is SLOW", ev.URL)
	default:
		return fmt.Sprintf("Website Monitor: %s returned HTTP %d", ev.URL, ev.StatusCode)
	}
}

// bodyFor renders the plain-text alert: target, status, latency, error and
// timestamp, with N/A for whatever the probe could not observe.
func bodyFor(ev domain.AlertEvent) string {
	return fmt.Sprintf(`Website Monitor Alert

URL:     %s
Status:  %s
Latency: %s
Error:   %s
Time:    %s
`, ev.URL, statusText(ev), latencyText(ev), errorText(ev), ev.CheckedAt.Format(timeLayout))
}

func statusText(ev domain.AlertEvent) string {
	if ev.StatusCode == 0 {
		return fmt.Sprintf("0 %s", ev.StatusDescription)
	}
	return fmt.Sprintf("%d %s (%s)", ev.StatusCode, ev.StatusDescription, status.FamilyOf(ev.StatusCode))
}

func latencyText(ev domain.AlertEvent) string {
	if ev.LatencySeconds == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2fs", *ev.LatencySeconds)
}

func errorText(ev domain.AlertEvent) string {
	if ev.Error == "" {
		return "N/A"
	}
	return ev.Error
}
