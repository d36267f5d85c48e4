package site

import (
	"github.com/go-chi/chi/v5"
	"github.com/zym-starx/bucolin-translator-website/internal/ui/templates"
)

// SetupRoutes configures routes for the static site pages.
func SetupRoutes(router chi.Router, tmpl *templates.Templates) {
	handlers := NewHandlers(tmpl)

	router.Get("/about", handlers.HandleAboutPage)
	router.Get("/research", handlers.HandleResearchPage)
	router.Get("/team", handlers.HandleTeamPage)
}
