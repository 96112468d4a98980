package notify

import (
	"context"
	"testing"
	"time"

	"github.com/martinlinchr/website-response-status-code-monitoring/internal/domain"
)

func TestCooldown_SuppressesRepeats(t *testing.T) {
	inner := &fakeNotifier{}
	c := NewCooldown(inner, time.Hour)

	ev := badStatusEvent()
	for i := 0; i < 3; i++ {
		if err := c.Send(context.Background(), ev); err != nil {
			t.Fatalf("send %d: %v", i, err)
		}
	}
	if inner.calls != 1 {
		t.Fatalf("expected 1 delivery inside window, got %d", inner.calls)
	}
}

func TestCooldown_DifferentKindPasses(t *testing.T) {
	inner := &fakeNotifier{}
	c := NewCooldown(inner, time.Hour)

	ev := badStatusEvent()
	_ = c.Send(context.Background(), ev)

	ev.Kind = domain.AlertSlowResponse
	_ = c.Send(context.Background(), ev)

	if inner.calls != 2 {
		t.Fatalf("different kinds should both deliver, got %d", inner.calls)
	}
}

func TestCooldown_ZeroWindowDisabled(t *testing.T) {
	inner := &fakeNotifier{}
	c := NewCooldown(inner, 0)

	ev := badStatusEvent()
	for i := 0; i < 3; i++ {
		_ = c.Send(context.Background(), ev)
	}
	if inner.calls != 3 {
		t.Fatalf("zero window must deliver every time, got %d", inner.calls)
	}
}
