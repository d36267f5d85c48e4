// Package router sets up HTTP routes for the web server.
package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/zym-starx/bucolin-translator-website/internal/config"
	"github.com/zym-starx/bucolin-translator-website/internal/lexicon"
	"github.com/zym-starx/bucolin-translator-website/internal/state"
	"github.com/zym-starx/bucolin-translator-website/internal/translate"
	adminFeature "github.com/zym-starx/bucolin-translator-website/internal/ui/features/admin"
	apiFeature "github.com/zym-starx/bucolin-translator-website/internal/ui/features/api"
	demoFeature "github.com/zym-starx/bucolin-translator-website/internal/ui/features/demo"
	siteFeature "github.com/zym-starx/bucolin-translator-website/internal/ui/features/site"
	"github.com/zym-starx/bucolin-translator-website/internal/ui/notifier"
	"github.com/zym-starx/bucolin-translator-website/internal/ui/resources"
	"github.com/zym-starx/bucolin-translator-website/internal/ui/templates"
)

// Deps bundles the shared dependencies the feature routes need.
type Deps struct {
	Templates    *templates.Templates
	Translator   *translate.Translator
	Service      translate.Service
	Config       *config.Config
	History      state.HistoryStore
	Lexicon      *lexicon.Lexicon
	SessionStore sessions.Store
	Notifier     *notifier.Notifier
	Logger       *slog.Logger
}

// SetupRoutes configures all routes for the web server. The admin panel
// is only mounted in development; in production /admin is a 404.
func SetupRoutes(router chi.Router, deps Deps) {
	// Static assets
	router.Handle("/static/*", resources.Handler())

	// Feature routes
	demoFeature.SetupRoutes(router, deps.Templates, deps.Translator, deps.Logger)
	siteFeature.SetupRoutes(router, deps.Templates)
	apiFeature.SetupRoutes(router, deps.Translator, deps.Service, deps.Config, deps.Logger)

	if deps.Config.IsDevelopment() {
		adminFeature.SetupRoutes(
			router,
			deps.Templates,
			deps.Translator,
			deps.Service,
			deps.Config,
			deps.History,
			deps.Lexicon,
			deps.SessionStore,
			deps.Notifier,
			deps.Logger,
		)
	}
}
