package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/zym-starx/bucolin-translator-website/internal/config"
	"github.com/zym-starx/bucolin-translator-website/internal/translate"
)

// SetupRoutes configures the JSON API routes.
func SetupRoutes(router chi.Router, tr *translate.Translator, svc translate.Service, cfg *config.Config, logger *slog.Logger) {
	handlers := NewHandlers(tr, svc, cfg, logger)

	router.Post("/api/translate", handlers.HandleTranslate)
	router.Get("/health", handlers.HandleHealth)
}
