// Package admin provides the password-protected administration panel.
// The panel only exists in development deployments; the router does not
// mount these routes in production, so /admin serves a plain 404 there.
package admin

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/zym-starx/bucolin-translator-website/internal/config"
	"github.com/zym-starx/bucolin-translator-website/internal/lexicon"
	"github.com/zym-starx/bucolin-translator-website/internal/state"
	"github.com/zym-starx/bucolin-translator-website/internal/translate"
	"github.com/zym-starx/bucolin-translator-website/internal/ui/notifier"
	"github.com/zym-starx/bucolin-translator-website/internal/ui/templates"
)

// SetupRoutes configures routes for the admin feature.
func SetupRoutes(
	router chi.Router,
	tmpl *templates.Templates,
	tr *translate.Translator,
	svc translate.Service,
	cfg *config.Config,
	history state.HistoryStore,
	lex *lexicon.Lexicon,
	sessionStore sessions.Store,
	notify *notifier.Notifier,
	logger *slog.Logger,
) {
	handlers := NewHandlers(tmpl, tr, svc, cfg, history, lex, sessionStore, notify, logger)

	router.Get("/admin", handlers.HandleAdminPage)
	router.Post("/admin/login", handlers.HandleLogin)
	router.Post("/admin/logout", handlers.HandleLogout)
	router.Post("/admin/test", handlers.HandleTest)
	router.Post("/admin/clear", handlers.HandleClear)
	router.Get("/admin/updates", handlers.HandleUpdates)
}
