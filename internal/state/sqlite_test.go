package state

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store := NewSQLiteStore(nil)
	path := filepath.Join(t.TempDir(), "history.db")
	if err := store.Open(path); err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAssignsIDAndTimestamp(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := &Translation{
		OriginalText:   "merhaba",
		TranslatedText: "hello",
		Confidence:     0.9,
		WordCount:      1,
		Service:        "Mock Service (Development)",
	}
	if err := store.Record(ctx, rec); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if rec.ID == "" {
		t.Error("expected Record to assign an ID")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("expected Record to assign CreatedAt")
	}
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		rec := &Translation{
			OriginalText:   "kitap",
			TranslatedText: "book",
			Service:        "Mock Service (Development)",
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.Record(ctx, rec); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	recent, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 translations, got %d", len(recent))
	}
	if !recent[0].CreatedAt.After(recent[1].CreatedAt) {
		t.Errorf("expected newest first, got %v then %v", recent[0].CreatedAt, recent[1].CreatedAt)
	}
}

func TestStats(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Total != 0 {
		t.Errorf("expected empty store, got total %d", stats.Total)
	}

	for _, conf := range []float64{0.8, 0.4} {
		rec := &Translation{
			OriginalText:   "su",
			TranslatedText: "water",
			Confidence:     conf,
			DurationMS:     100,
			Service:        "Mock Service (Development)",
		}
		if err := store.Record(ctx, rec); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	stats, err = store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Total != 2 {
		t.Errorf("expected total 2, got %d", stats.Total)
	}
	if stats.AvgConfidence < 0.59 || stats.AvgConfidence > 0.61 {
		t.Errorf("expected avg confidence ~0.6, got %f", stats.AvgConfidence)
	}
	if stats.AvgDurationMS != 100 {
		t.Errorf("expected avg duration 100, got %f", stats.AvgDurationMS)
	}
}

func TestClear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := &Translation{OriginalText: "ev", TranslatedText: "house", Service: "Mock Service (Development)"}
	if err := store.Record(ctx, rec); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	recent, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("expected empty history after Clear, got %d rows", len(recent))
	}
}

func TestOperationsRequireOpenDB(t *testing.T) {
	store := NewSQLiteStore(nil)
	ctx := context.Background()

	if err := store.Record(ctx, &Translation{}); err == nil {
		t.Error("expected Record on closed store to fail")
	}
	if _, err := store.Recent(ctx, 1); err == nil {
		t.Error("expected Recent on closed store to fail")
	}
	if err := store.Ping(ctx); err == nil {
		t.Error("expected Ping on closed store to fail")
	}
}
