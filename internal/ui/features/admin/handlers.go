package admin

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"
	"github.com/zym-starx/bucolin-translator-website/internal/config"
	"github.com/zym-starx/bucolin-translator-website/internal/lexicon"
	"github.com/zym-starx/bucolin-translator-website/internal/state"
	"github.com/zym-starx/bucolin-translator-website/internal/translate"
	"github.com/zym-starx/bucolin-translator-website/internal/ui/notifier"
	"github.com/zym-starx/bucolin-translator-website/internal/ui/templates"
)

const (
	sessionName = "bucolin_admin"
	sessionKey  = "authenticated"

	// How many recent translations the dashboard shows.
	historyLimit = 20
)

// Handlers provides HTTP handlers for the admin panel.
type Handlers struct {
	templates    *templates.Templates
	translator   *translate.Translator
	service      translate.Service
	cfg          *config.Config
	history      state.HistoryStore
	lexicon      *lexicon.Lexicon
	sessionStore sessions.Store
	notifier     *notifier.Notifier
	logger       *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(
	tmpl *templates.Templates,
	tr *translate.Translator,
	svc translate.Service,
	cfg *config.Config,
	history state.HistoryStore,
	lex *lexicon.Lexicon,
	sessionStore sessions.Store,
	notify *notifier.Notifier,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		templates:    tmpl,
		translator:   tr,
		service:      svc,
		cfg:          cfg,
		history:      history,
		lexicon:      lex,
		sessionStore: sessionStore,
		notifier:     notify,
		logger:       logger,
	}
}

func (h *Handlers) isAuthenticated(r *http.Request) bool {
	session, err := h.sessionStore.Get(r, sessionName)
	if err != nil {
		return false
	}
	authed, ok := session.Values[sessionKey].(bool)
	return ok && authed
}

func (h *Handlers) renderLogin(w http.ResponseWriter, loginError string) {
	data := &LoginData{
		Base:       templates.NewBase("Admin", "admin"),
		LoginError: loginError,
	}
	data.HideFooter = true
	if err := h.templates.Render(w, "admin_login.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// HandleAdminPage renders the dashboard, or the login form when the
// session is not authenticated.
func (h *Handlers) HandleAdminPage(w http.ResponseWriter, r *http.Request) {
	if !h.isAuthenticated(r) {
		h.renderLogin(w, "")
		return
	}
	h.renderDashboard(w, r, nil)
}

// HandleLogin checks the submitted password against the configured
// admin password and starts an authenticated session.
func (h *Handlers) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	password := r.PostFormValue("password")

	if h.cfg.AdminPassword == "" ||
		subtle.ConstantTimeCompare([]byte(password), []byte(h.cfg.AdminPassword)) != 1 {
		h.logger.Warn("admin login rejected", "remote", r.RemoteAddr)
		h.renderLogin(w, "Invalid password")
		return
	}

	session, _ := h.sessionStore.Get(r, sessionName)
	session.Values[sessionKey] = true
	if err := session.Save(r, w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// HandleLogout ends the admin session.
func (h *Handlers) HandleLogout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.sessionStore.Get(r, sessionName)
	session.Values[sessionKey] = false
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// HandleTest runs a test translation through the active service and
// re-renders the dashboard with the outcome.
func (h *Handlers) HandleTest(w http.ResponseWriter, r *http.Request) {
	if !h.isAuthenticated(r) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	result, err := h.translator.Translate(r.Context(), r.PostFormValue("text"))
	if err != nil {
		h.logger.Error("service test failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.renderDashboard(w, r, result)
}

// HandleClear wipes the translation history.
func (h *Handlers) HandleClear(w http.ResponseWriter, r *http.Request) {
	if !h.isAuthenticated(r) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	if err := h.history.Clear(r.Context()); err != nil {
		h.logger.Error("failed to clear history", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.notifier.Broadcast()
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// HandleUpdates is the long-lived SSE endpoint for the dashboard. It
// re-sends the recent translations block whenever the history changes.
func (h *Handlers) HandleUpdates(w http.ResponseWriter, r *http.Request) {
	if !h.isAuthenticated(r) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	sse := datastar.NewSSE(w, r)

	updates := h.notifier.Subscribe()
	defer h.notifier.Unsubscribe(updates)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			if err := h.sendHistoryView(sse, r); err != nil {
				_ = sse.ConsoleError(err)
				// Keep the stream open and retry on the next update.
			}
		}
	}
}

func (h *Handlers) sendHistoryView(sse *datastar.ServerSentEventGenerator, r *http.Request) error {
	history, err := h.buildHistoryData(r)
	if err != nil {
		return err
	}
	html, err := h.templates.RenderFragment("admin.html", "history", history)
	if err != nil {
		return err
	}
	return sse.PatchElements(html)
}

func (h *Handlers) buildHistoryData(r *http.Request) (*HistoryData, error) {
	items, err := h.history.Recent(r.Context(), historyLimit)
	if err != nil {
		return nil, err
	}
	stats, err := h.history.Stats(r.Context())
	if err != nil {
		return nil, err
	}
	return &HistoryData{Items: items, Stats: stats}, nil
}

func (h *Handlers) renderDashboard(w http.ResponseWriter, r *http.Request, testResult *translate.Result) {
	history, err := h.buildHistoryData(r)
	if err != nil {
		h.logger.Error("failed to load history", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	environment := "Development"
	if !h.cfg.IsDevelopment() {
		environment = "Production"
	}

	data := &DashboardData{
		Base:           templates.NewBase("Admin", "admin"),
		Environment:    environment,
		ServiceMode:    h.cfg.ServiceLabel(),
		MaxTextLength:  config.MaxTextLength,
		MockDelay:      config.MockProcessingTime.String(),
		LexiconEntries: h.lexicon.Len(),
		TestResult:     testResult,
		History:        history,
	}
	data.HideFooter = true

	if h.cfg.UseMockService {
		data.APIOnline = true
		data.APIStatus = "Active (Mock)"
		data.Endpoint = "localhost (in-process)"
	} else {
		data.Endpoint = h.cfg.APIURL
		data.APIOnline, data.APIStatus = h.checkAPI(r)
	}

	if err := h.templates.Render(w, "admin.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// checkAPI probes the backing translation API's health endpoint.
func (h *Handlers) checkAPI(r *http.Request) (bool, string) {
	hc, ok := h.service.(translate.HealthChecker)
	if !ok {
		return false, "Unknown"
	}
	if err := hc.Health(r.Context()); err != nil {
		h.logger.Debug("api health check failed", "error", err)
		return false, fmt.Sprintf("Offline (%s)", errSummary(err))
	}
	return true, "Online"
}

// errSummary keeps health errors short enough for a status card.
func errSummary(err error) string {
	const max = 60
	s := err.Error()
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
