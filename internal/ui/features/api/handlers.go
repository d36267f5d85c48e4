// Package api provides the JSON translation endpoint and health check.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/zym-starx/bucolin-translator-website/internal/config"
	"github.com/zym-starx/bucolin-translator-website/internal/translate"
)

// TranslateRequest is the JSON body accepted by the translate endpoint.
type TranslateRequest struct {
	Text string `json:"text"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Backend string `json:"backend"`
}

// Handlers provides the JSON API handlers.
type Handlers struct {
	translator *translate.Translator
	service    translate.Service
	cfg        *config.Config
	logger     *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(tr *translate.Translator, svc translate.Service, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		translator: tr,
		service:    svc,
		cfg:        cfg,
		logger:     logger,
	}
}

// HandleTranslate translates the posted text and returns the result as
// JSON. Validation failures are reported inside the result body, not as
// HTTP errors, so clients get one uniform shape.
func (h *Handlers) HandleTranslate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	result, err := h.translator.Translate(r.Context(), req.Text)
	if err != nil {
		h.logger.Error("api translation failed", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnprocessableEntity
	}
	h.writeJSON(w, status, result)
}

// HandleHealth reports liveness plus the reachability of the backing
// translation service.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:  "ok",
		Service: h.cfg.ServiceLabel(),
		Version: config.AppVersion,
		Backend: "ok",
	}
	if hc, ok := h.service.(translate.HealthChecker); ok {
		if err := hc.Health(r.Context()); err != nil {
			resp.Backend = "unreachable"
		}
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
