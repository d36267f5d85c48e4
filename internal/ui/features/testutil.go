// Package features provides shared test utilities for UI feature tests.
package features

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"

	"github.com/zym-starx/bucolin-translator-website/internal/config"
	"github.com/zym-starx/bucolin-translator-website/internal/lexicon"
	"github.com/zym-starx/bucolin-translator-website/internal/state"
	"github.com/zym-starx/bucolin-translator-website/internal/testutil"
	"github.com/zym-starx/bucolin-translator-website/internal/translate"
	"github.com/zym-starx/bucolin-translator-website/internal/ui/notifier"
	"github.com/zym-starx/bucolin-translator-website/internal/ui/templates"
)

// TestAdminPassword is the admin password used by fixtures.
const TestAdminPassword = "test-admin-pass"

// MemoryHistory is an in-memory HistoryStore for handler tests.
type MemoryHistory struct {
	mu    sync.Mutex
	items []*state.Translation
}

// NewMemoryHistory creates an empty in-memory history store.
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{}
}

func (m *MemoryHistory) Record(_ context.Context, tr *state.Translation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	tr.ID = uuid.New().String()
	tr.CreatedAt = time.Now().UTC()
	cp := *tr
	m.items = append(m.items, &cp)
	return nil
}

func (m *MemoryHistory) Recent(_ context.Context, limit int) ([]*state.Translation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*state.Translation
	for i := len(m.items) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.items[i])
	}
	return out, nil
}

func (m *MemoryHistory) Stats(_ context.Context) (*state.Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := &state.Stats{Total: int64(len(m.items))}
	if len(m.items) == 0 {
		return stats, nil
	}
	var confSum float64
	var durSum int64
	for _, it := range m.items {
		confSum += it.Confidence
		durSum += it.DurationMS
	}
	stats.AvgConfidence = confSum / float64(len(m.items))
	stats.AvgDurationMS = float64(durSum) / float64(len(m.items))
	return stats, nil
}

func (m *MemoryHistory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = nil
	return nil
}

func (m *MemoryHistory) Ping(_ context.Context) error { return nil }
func (m *MemoryHistory) Close() error                 { return nil }

var _ state.HistoryStore = (*MemoryHistory)(nil)

// TestFixture holds all dependencies needed for UI handler tests.
type TestFixture struct {
	Config       *config.Config
	Templates    *templates.Templates
	Lexicon      *lexicon.Lexicon
	History      *MemoryHistory
	SessionStore *sessions.CookieStore
	Notifier     *notifier.Notifier
	Service      *translate.MockService
	Translator   *translate.Translator
}

// SetupTestFixture creates a complete development-mode fixture backed by
// the mock translation service with no artificial delay.
func SetupTestFixture(t *testing.T) *TestFixture {
	t.Helper()

	logger := testutil.NewTestLogger(t)

	cfg := &config.Config{
		APIURL:         config.DefaultAPIURL,
		UseMockService: true,
		AdminPassword:  TestAdminPassword,
		Environment:    config.DefaultEnvironment,
		SecretKey:      "test-secret",
		Port:           config.DefaultPort,
	}
	require.True(t, cfg.IsDevelopment())

	tmpl, err := templates.New()
	require.NoError(t, err)

	lex := lexicon.Default()
	svc := translate.NewMockService(lex)
	svc.SetDelay(0)

	history := NewMemoryHistory()
	notify := notifier.New()

	translator := translate.New(translate.Options{
		Service:     svc,
		ServiceName: cfg.ServiceLabel(),
		History:     history,
		OnRecorded:  notify.Broadcast,
		Logger:      logger,
	})

	sessionStore := sessions.NewCookieStore([]byte(cfg.SecretKey))
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	return &TestFixture{
		Config:       cfg,
		Templates:    tmpl,
		Lexicon:      lex,
		History:      history,
		SessionStore: sessionStore,
		Notifier:     notify,
		Service:      svc,
		Translator:   translator,
	}
}
