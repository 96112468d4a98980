package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/martinlinchr/website-response-status-code-monitoring/internal/domain"
)

func badStatusEvent() domain.AlertEvent {
	lat := 0.42
	return domain.AlertEvent{
		Kind:              domain.AlertBadStatus,
		URL:               "https://example.com",
		StatusCode:        503,
		StatusDescription: "Service Unavailable",
		LatencySeconds:    &lat,
		CheckedAt:         time.Date(2026, 8, 18, 12, 0, 0, 0, time.UTC),
	}
}

func TestSlack_OK(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		_ = json.NewDecoder(r.Body).Decode(&payload)
		got = payload["text"]
		w.WriteHeader(200)
	}))
	defer ts.Close()

	s := NewSlack(ts.URL)
	if s == nil {
		t.Fatal("expected slack client")
	}
	if err := s.Send(context.Background(), badStatusEvent()); err != nil {
		t.Fatalf("send err: %v", err)
	}
	if got == "" || got[0] != '*' { // starts with the bolded subject
		t.Fatalf("payload not as expected: %q", got)
	}
	if !strings.Contains(got, "HTTP 503") || !strings.Contains(got, "Service Unavailable") {
		t.Fatalf("payload missing status detail: %q", got)
	}
}

func TestSlack_Non2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer ts.Close()

	s := NewSlack(ts.URL)
	if err := s.Send(context.Background(), badStatusEvent()); err == nil {
		t.Fatalf("expected error on non-2xx")
	}
}

func TestNewSlack_EmptyWebhook(t *testing.T) {
	if s := NewSlack(""); s != nil {
		t.Fatalf("expected nil for empty webhook, got %+v", s)
	}
}
