// Package ui provides the public web server for the translator.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"golang.org/x/sync/errgroup"

	"github.com/zym-starx/bucolin-translator-website/internal/config"
	"github.com/zym-starx/bucolin-translator-website/internal/lexicon"
	"github.com/zym-starx/bucolin-translator-website/internal/state"
	"github.com/zym-starx/bucolin-translator-website/internal/translate"
	"github.com/zym-starx/bucolin-translator-website/internal/ui/notifier"
	"github.com/zym-starx/bucolin-translator-website/internal/ui/router"
	"github.com/zym-starx/bucolin-translator-website/internal/ui/templates"
)

// Server is the main web server.
type Server struct {
	cfg      *config.Config
	service  translate.Service
	lexicon  *lexicon.Lexicon
	history  state.HistoryStore
	logger   *slog.Logger
	notifier *notifier.Notifier

	sessionStore *sessions.CookieStore
}

// ServerConfig holds the server's dependencies.
type ServerConfig struct {
	Config  *config.Config
	Service translate.Service
	Lexicon *lexicon.Lexicon
	History state.HistoryStore
	Logger  *slog.Logger
}

// NewServer creates a new web server instance.
func NewServer(cfg ServerConfig) *Server {
	sessionStore := sessions.NewCookieStore([]byte(cfg.Config.SecretKey))
	sessionStore.MaxAge(86400) // 1 day
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	return &Server{
		cfg:          cfg.Config,
		service:      cfg.Service,
		lexicon:      cfg.Lexicon,
		history:      cfg.History,
		logger:       cfg.Logger,
		notifier:     notifier.New(),
		sessionStore: sessionStore,
	}
}

// Serve starts the web server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.logger.Info("starting web server",
		"addr", fmt.Sprintf("http://localhost:%d", s.cfg.Port),
		"service", s.cfg.ServiceLabel(),
		"environment", s.cfg.Environment)

	tmpl, err := templates.New()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	translator := translate.New(translate.Options{
		Service:     s.service,
		ServiceName: s.cfg.ServiceLabel(),
		History:     s.history,
		OnRecorded:  s.notifier.Broadcast,
		Logger:      s.logger,
	})

	eg, egctx := errgroup.WithContext(ctx)

	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	router.SetupRoutes(r, router.Deps{
		Templates:    tmpl,
		Translator:   translator,
		Service:      s.service,
		Config:       s.cfg,
		History:      s.history,
		Lexicon:      s.lexicon,
		SessionStore: s.sessionStore,
		Notifier:     s.notifier,
		Logger:       s.logger,
	})

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Watch the lexicon file if enabled and loaded from disk
	if s.cfg.Watch && s.lexicon.Path() != "" {
		eg.Go(func() error {
			return s.watchLexicon(egctx)
		})
	}

	// Start HTTP server
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down web server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// Notifier returns the server's notifier for SSE updates.
func (s *Server) Notifier() *notifier.Notifier {
	return s.notifier
}

// watchLexicon reloads the lexicon whenever its file changes on disk,
// so dictionary edits take effect without a restart.
func (s *Server) watchLexicon(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	// Watch the containing directory; editors often replace the file,
	// which would break a direct file watch.
	path := s.lexicon.Path()
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		s.logger.Error("failed to watch lexicon directory", "error", err)
		// Don't fail - continue without watching
		return nil
	}

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}

			// Debounce
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				if err := s.lexicon.Reload(); err != nil {
					s.logger.Error("lexicon reload failed", "error", err)
					return
				}
				s.logger.Info("lexicon reloaded", "entries", s.lexicon.Len())
				s.notifier.Broadcast()
			})

		case err := <-watcher.Errors:
			s.logger.Error("watcher error", "error", err)
		}
	}
}
