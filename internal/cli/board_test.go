package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/martinlinchr/website-response-status-code-monitoring/internal/domain"
)

func TestCodeCell(t *testing.T) {
	ok := 200
	if got := codeCell(domain.ProbeResult{StatusCode: &ok}); got != "200" {
		t.Fatalf("codeCell = %q, want %q", got, "200")
	}
	if got := codeCell(domain.ProbeResult{}); got != "-" {
		t.Fatalf("codeCell without code = %q, want %q", got, "-")
	}
}

func TestStateCell(t *testing.T) {
	ok := 200
	bad := 503

	cases := []struct {
		name string
		r    domain.ProbeResult
		want string
	}{
		{"healthy", domain.ProbeResult{StatusCode: &ok}, "OK"},
		{"bad status", domain.ProbeResult{StatusCode: &bad}, "Error"},
		{"unreachable", domain.ProbeResult{Error: "dial tcp: refused"}, "Error"},
	}
	for _, tc := range cases {
		if got := stateCell(tc.r); got != tc.want {
			t.Errorf("%s: stateCell = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestLatencyCell(t *testing.T) {
	lat := 1.234
	if got := latencyCell(domain.ProbeResult{AvgLatencySeconds: &lat}); got != "1.23s" {
		t.Fatalf("latencyCell = %q, want %q", got, "1.23s")
	}
	if got := latencyCell(domain.ProbeResult{}); got != "N/A" {
		t.Fatalf("latencyCell without latency = %q, want %q", got, "N/A")
	}
}

func TestCheckedCell(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 30, 0, 0, time.Local)
	if got := checkedCell(domain.ProbeResult{CheckedAt: at}); got != "2024-05-01 12:30:00" {
		t.Fatalf("checkedCell = %q, want %q", got, "2024-05-01 12:30:00")
	}
}

func TestRenderBoardEmpty(t *testing.T) {
	var buf bytes.Buffer
	renderBoard(&buf, nil)

	out := buf.String()
	if !strings.Contains(out, "WEBSITE MONITOR") {
		t.Fatalf("board missing title: %q", out)
	}
	if !strings.Contains(out, "No results yet") {
		t.Fatalf("board missing empty hint: %q", out)
	}
}

func TestRenderBoardRows(t *testing.T) {
	ok := 200
	lat := 0.42
	results := []domain.ProbeResult{
		{
			URL:               "https://example.com",
			StatusCode:        &ok,
			StatusDescription: "OK",
			AvgLatencySeconds: &lat,
			CheckedAt:         time.Now(),
		},
		{
			URL:               "https://down.example.com",
			StatusDescription: domain.ConnectionFailedDescription,
			Error:             "connection refused",
			CheckedAt:         time.Now(),
		},
	}

	var buf bytes.Buffer
	renderBoard(&buf, results)

	out := buf.String()
	for _, want := range []string{"https://example.com", "0.42s", "https://down.example.com", "Connection Failed", "N/A"} {
		if !strings.Contains(out, want) {
			t.Errorf("board missing %q:\n%s", want, out)
		}
	}
}
