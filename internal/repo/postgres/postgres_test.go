package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/martinlinchr/website-response-status-code-monitoring/internal/domain"
)

func TestPostgresStore_Upsert_List_Get_Remove(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping Postgres integration test")
	}

	ctx := context.Background()

	store, err := New(ctx, dsn, zap.NewNop())
	if err != nil {
		t.Fatalf("New store: %v", err)
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	// Unique URL per run to avoid UNIQUE(url) collisions with previous runs.
	uniqueURL := fmt.Sprintf("https://example.com/test-%d", time.Now().UTC().UnixNano())

	tgt := &domain.Target{URL: uniqueURL, LatencyThresholdSeconds: 1.5}
	if err := store.Upsert(ctx, tgt); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if tgt.ID == "" {
		t.Fatalf("expected ID to be set")
	}

	// Upsert again with a new threshold; identity must survive.
	again := &domain.Target{URL: uniqueURL, LatencyThresholdSeconds: 4.0}
	if err := store.Upsert(ctx, again); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	if again.ID != tgt.ID {
		t.Fatalf("second Upsert must report the original ID: %q vs %q", again.ID, tgt.ID)
	}

	got, err := store.GetByURL(ctx, uniqueURL)
	if err != nil {
		t.Fatalf("GetByURL: %v", err)
	}
	if got == nil {
		t.Fatalf("target not found after upsert")
	}
	if got.ID != tgt.ID {
		t.Fatalf("upsert must keep the original ID: %q vs %q", got.ID, tgt.ID)
	}
	if got.LatencyThresholdSeconds != 4.0 {
		t.Fatalf("expected threshold replaced, got %v", got.LatencyThresholdSeconds)
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	found := false
	for _, x := range list {
		if x.URL == uniqueURL {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("added target not found in list; got %d rows", len(list))
	}

	if err := store.Remove(ctx, uniqueURL); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := store.Remove(ctx, uniqueURL); err != nil {
		t.Fatalf("second Remove must be a no-op: %v", err)
	}

	gone, err := store.GetByURL(ctx, uniqueURL)
	if err != nil {
		t.Fatalf("GetByURL after remove: %v", err)
	}
	if gone != nil {
		t.Fatalf("expected nil after remove, got %+v", gone)
	}
}
