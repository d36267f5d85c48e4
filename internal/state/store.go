// Package state persists translation history. Two backends are provided:
// SQLite for the default single-node deployment and Postgres for shared
// installations.
package state

import (
	"context"
	"time"
)

// Translation is a single recorded translation.
type Translation struct {
	ID              string
	OriginalText    string
	TranslatedText  string
	Confidence      float64
	WordCount       int
	RecognizedWords int
	Service         string
	DurationMS      int64
	CreatedAt       time.Time
}

// Stats aggregates the recorded history.
type Stats struct {
	Total         int64
	AvgConfidence float64
	AvgDurationMS float64
}

// HistoryStore stores and queries translation history.
type HistoryStore interface {
	// Record persists a translation. ID and CreatedAt are assigned by the
	// store when empty.
	Record(ctx context.Context, t *Translation) error

	// Recent returns up to limit translations, newest first.
	Recent(ctx context.Context, limit int) ([]*Translation, error)

	// Stats returns aggregate statistics over all recorded translations.
	Stats(ctx context.Context) (*Stats, error)

	// Clear removes all recorded translations.
	Clear(ctx context.Context) error

	// Ping verifies the backing database is reachable.
	Ping(ctx context.Context) error

	Close() error
}
