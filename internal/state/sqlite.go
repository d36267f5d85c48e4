package state

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // register the "sqlite" driver
)

// SQLiteStore implements HistoryStore using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// NewSQLiteStore creates a new SQLite history store instance.
func NewSQLiteStore(logger *slog.Logger) *SQLiteStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SQLiteStore{logger: logger}
}

// Open opens the SQLite database and runs pending migrations.
// Use ":memory:" for an in-memory database.
func (s *SQLiteStore) Open(path string) error {
	dsn := path
	if path != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	s.db = db
	s.path = path

	if err := s.Migrate(); err != nil {
		_ = db.Close()
		return err
	}

	s.logger.Debug("history store opened", "path", path)
	return nil
}

// Close closes the SQLite database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Ping verifies the database connection.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}
	return s.db.PingContext(ctx)
}

// Record persists a translation.
func (s *SQLiteStore) Record(ctx context.Context, t *Translation) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO translations
		 (id, original_text, translated_text, confidence, word_count, recognized_words, service, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.OriginalText, t.TranslatedText, t.Confidence,
		t.WordCount, t.RecognizedWords, t.Service, t.DurationMS, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record translation: %w", err)
	}
	return nil
}

// Recent returns up to limit translations, newest first.
func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]*Translation, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, original_text, translated_text, confidence, word_count, recognized_words, service, duration_ms, created_at
		 FROM translations ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query translations: %w", err)
	}
	defer func() { _ = rows.Close() }()

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
func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	stats := &Stats{}
	var avgConf, avgDur sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
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
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM translations`); err != nil {
		return fmt.Errorf("failed to clear translations: %w", err)
	}
	return nil
}

var _ HistoryStore = (*SQLiteStore)(nil)
