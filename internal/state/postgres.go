package state

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements HistoryStore using a Postgres database,
// for deployments where several app instances share one history.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewPostgresStore connects to Postgres and ensures the schema exists.
func NewPostgresStore(ctx context.Context, dsn string, logger *slog.Logger) (*PostgresStore, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	s := &PostgresStore{pool: pool, logger: logger}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Debug("history store opened", "driver", "postgres")
	return s, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS translations (
			id TEXT PRIMARY KEY,
			original_text TEXT NOT NULL,
			translated_text TEXT NOT NULL,
			confidence DOUBLE PRECISION NOT NULL DEFAULT 0,
			word_count INTEGER NOT NULL DEFAULT 0,
			recognized_words INTEGER NOT NULL DEFAULT 0,
			service TEXT NOT NULL,
			duration_ms BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_translations_created_at ON translations(created_at)`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// Ping verifies the database connection.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Record persists a translation.
func (s *PostgresStore) Record(ctx context.Context, t *Translation) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO translations
		 (id, original_text, translated_text, confidence, word_count, recognized_words, service, duration_ms, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		t.ID, t.OriginalText, t.TranslatedText, t.Confidence,
		t.WordCount, t.RecognizedWords, t.Service, t.DurationMS, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record translation: %w", err)
	}
	return nil
}

// Recent returns up to limit translations, newest first.
func (s *PostgresStore) Recent(ctx context.Context, limit int) ([]*Translation, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, original_text, translated_text, confidence, word_count, recognized_words, service, duration_ms, created_at
		 FROM translations ORDER BY created_at DESC, id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query translations: %w", err)
	}
	defer rows.Close()

	var out []*Translation
	for rows.Next() {
		t := &Translation{}
		if err := rows.Scan(&t.ID, &t.OriginalText, &t.TranslatedText, &t.Confidence,
			&t.WordCount, &t.RecognizedWords, &t.Service, &t.DurationMS, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan translation: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Stats returns aggregate statistics over all recorded translations.
func (s *PostgresStore) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	var avgConf, avgDur sql.NullFloat64
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*), AVG(confidence), AVG(duration_ms) FROM translations`,
	).Scan(&stats.Total, &avgConf, &avgDur)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	stats.AvgConfidence = avgConf.Float64
	stats.AvgDurationMS = avgDur.Float64
	return stats, nil
}

// Clear removes all recorded translations.
func (s *PostgresStore) Clear(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM translations`); err != nil {
		return fmt.Errorf("failed to clear translations: %w", err)
	}
	return nil
}

var _ HistoryStore = (*PostgresStore)(nil)
