package state

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/zym-starx/bucolin-translator-website/internal/config"
)

// Open creates the history store selected by the config.
func Open(ctx context.Context, cfg *config.HistoryConfig, logger *slog.Logger) (HistoryStore, error) {
	switch cfg.Driver {
	case "sqlite":
		if dir := filepath.Dir(cfg.Path); dir != "." && dir != "" && cfg.Path != ":memory:" {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return nil, fmt.Errorf("failed to create history directory: %w", err)
			}
		}
		store := NewSQLiteStore(logger)
		if err := store.Open(cfg.Path); err != nil {
			return nil, err
		}
		return store, nil
	case "postgres":
		return NewPostgresStore(ctx, cfg.DSN, logger)
	default:
		return nil, fmt.Errorf("unknown history driver %q", cfg.Driver)
	}
}
