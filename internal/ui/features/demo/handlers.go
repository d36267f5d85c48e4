package demo

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/zym-starx/bucolin-translator-website/internal/config"
	"github.com/zym-starx/bucolin-translator-website/internal/translate"
	"github.com/zym-starx/bucolin-translator-website/internal/ui/templates"
)

// Handlers provides HTTP handlers for the translation demo.
type Handlers struct {
	templates  *templates.Templates
	translator *translate.Translator
	logger     *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(tmpl *templates.Templates, tr *translate.Translator, logger *slog.Logger) *Handlers {
	return &Handlers{
		templates:  tmpl,
		translator: tr,
		logger:     logger,
	}
}

// HandleDemoPage renders the translation demo.
func (h *Handlers) HandleDemoPage(w http.ResponseWriter, r *http.Request) {
	data := &PageData{
		Base:          templates.NewBase("Demo", "demo"),
		MaxTextLength: config.MaxTextLength,
	}
	if err := h.templates.Render(w, "demo.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// HandleTranslate runs a translation and re-renders the demo page with
// the result.
func (h *Handlers) HandleTranslate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	text := r.PostFormValue("text")

	result, err := h.translator.Translate(r.Context(), text)
	if err != nil {
		h.logger.Error("translation failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := &PageData{
		Base:          templates.NewBase("Demo", "demo"),
		MaxTextLength: config.MaxTextLength,
		InputText:     text,
		Result:        result,
	}
	if result.Success {
		data.ConfidenceLabel = confidenceLabel(result.Confidence)
		data.SpeedLabel = speedLabel(result.ProcessingSeconds())
		data.LengthLabel = lengthLabel(result.WordCount)
		// "Mock Service (Development)" displays as "Mock Service".
		data.EngineLabel, _, _ = strings.Cut(result.ServiceUsed, " (")
		if strings.Contains(result.ServiceUsed, "Mock") {
			data.EngineNote = "Development"
		} else {
			data.EngineNote = "Production"
		}
	}
	if err := h.templates.Render(w, "demo.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
