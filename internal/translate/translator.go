package translate

import (
	"context"
	"log/slog"
	"strings"

	"github.com/zym-starx/bucolin-translator-website/internal/config"
	"github.com/zym-starx/bucolin-translator-website/internal/state"
)

// Translator validates input, dispatches to the configured service, and
// records successful translations into the history store.
type Translator struct {
	service     Service
	serviceName string
	maxLength   int
	history     state.HistoryStore
	onRecorded  func()
	logger      *slog.Logger
}

// Options configures a Translator.
type Options struct {
	Service     Service
	ServiceName string
	MaxLength   int
	History     state.HistoryStore // optional
	OnRecorded  func()             // optional, called after a translation is recorded
	Logger      *slog.Logger       // optional
}

// New creates a Translator with the given options.
func New(opts Options) *Translator {
	maxLength := opts.MaxLength
	if maxLength == 0 {
		maxLength = config.MaxTextLength
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Translator{
		service:     opts.Service,
		serviceName: opts.ServiceName,
		maxLength:   maxLength,
		history:     opts.History,
		onRecorded:  opts.OnRecorded,
		logger:      logger,
	}
}

// ServiceName returns the label of the active backend.
func (t *Translator) ServiceName() string {
	return t.serviceName
}

// Service returns the underlying translation service.
func (t *Translator) Service() Service {
	return t.service
}

// Translate validates and translates text. Validation failures and upstream
// errors are reported in the Result rather than as an error; only context
// cancellation and infrastructure failures return an error.
func (t *Translator) Translate(ctx context.Context, text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return &Result{Success: false, Error: ErrEmptyText.Error()}, nil
	}
	if len(text) > t.maxLength {
		return &Result{Success: false, Error: (&TextTooLongError{Limit: t.maxLength}).Error()}, nil
	}

	result, err := t.service.Translate(ctx, text)
	if err != nil {
		return nil, err
	}
	result.ServiceUsed = t.serviceName

	if result.Success && t.history != nil {
		rec := &state.Translation{
			OriginalText:    result.OriginalText,
			TranslatedText:  result.TranslatedText,
			Confidence:      result.Confidence,
			WordCount:       result.WordCount,
			RecognizedWords: result.RecognizedWords,
			Service:         t.serviceName,
			DurationMS:      result.ProcessingTime.Milliseconds(),
		}
		if err := t.history.Record(ctx, rec); err != nil {
			// History is best-effort; a storage hiccup must not fail the
			// translation itself.
			t.logger.Error("failed to record translation", "error", err)
		} else if t.onRecorded != nil {
			t.onRecorded()
		}
	}

	return result, nil
}
