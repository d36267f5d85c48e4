// Package site provides the static project pages: about, research
// and team.
package site

import (
	"net/http"

	"github.com/zym-starx/bucolin-translator-website/internal/config"
	"github.com/zym-starx/bucolin-translator-website/internal/ui/templates"
)

// PageData carries the fields the static pages render.
type PageData struct {
	templates.Base

	MaxTextLength int
}

// Handlers provides HTTP handlers for the static site pages.
type Handlers struct {
	templates *templates.Templates
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(tmpl *templates.Templates) *Handlers {
	return &Handlers{templates: tmpl}
}

func (h *Handlers) render(w http.ResponseWriter, page, title, nav string) {
	data := &PageData{
		Base:          templates.NewBase(title, nav),
		MaxTextLength: config.MaxTextLength,
	}
	if err := h.templates.Render(w, page, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// HandleAboutPage renders the project overview.
func (h *Handlers) HandleAboutPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "about.html", "About", "about")
}

// HandleResearchPage renders the research background page.
func (h *Handlers) HandleResearchPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "research.html", "Research", "research")
}

// HandleTeamPage renders the team page.
func (h *Handlers) HandleTeamPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "team.html", "Team", "team")
}
