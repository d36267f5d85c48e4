// Package demo provides the interactive translation demo feature.
package demo

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/zym-starx/bucolin-translator-website/internal/translate"
	"github.com/zym-starx/bucolin-translator-website/internal/ui/templates"
)

// SetupRoutes configures routes for the demo feature.
func SetupRoutes(router chi.Router, tmpl *templates.Templates, tr *translate.Translator, logger *slog.Logger) {
	handlers := NewHandlers(tmpl, tr, logger)

	router.Get("/", handlers.HandleDemoPage)
	router.Post("/translate", handlers.HandleTranslate)
}
