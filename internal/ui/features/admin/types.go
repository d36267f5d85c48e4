package admin

import (
	"github.com/zym-starx/bucolin-translator-website/internal/state"
	"github.com/zym-starx/bucolin-translator-website/internal/translate"
	"github.com/zym-starx/bucolin-translator-website/internal/ui/templates"
)

// LoginData carries the fields the admin login page renders.
type LoginData struct {
	templates.Base

	LoginError string
}

// HistoryData holds the recent translations block rendered on the
// dashboard and re-sent over SSE when new translations arrive.
type HistoryData struct {
	Items []*state.Translation
	Stats *state.Stats
}

// DashboardData carries everything the admin dashboard renders.
type DashboardData struct {
	templates.Base

	Environment    string
	ServiceMode    string
	APIOnline      bool
	APIStatus      string
	Endpoint       string
	MaxTextLength  int
	MockDelay      string
	LexiconEntries int

	TestResult *translate.Result
	History    *HistoryData
}
