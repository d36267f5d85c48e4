// Package translate implements the translation services behind the demo:
// a dictionary-based mock for development and an HTTP client for the real
// model API, plus the Translator facade that selects between them.
package translate

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Validation errors returned by Translator before any service is called.
var (
	// ErrEmptyText is returned when the input contains no text.
	ErrEmptyText = errors.New("Please enter some text to translate")

	// ErrServiceUnavailable is returned when the upstream API answers with
	// a non-2xx status.
	ErrServiceUnavailable = errors.New("Translation service is currently unavailable")

	// ErrCannotConnect is returned when the upstream API stays unreachable
	// after all retry attempts.
	ErrCannotConnect = errors.New("Cannot connect to translation service")
)

// TextTooLongError is returned when the input exceeds the length limit.
type TextTooLongError struct {
	Limit int
}

func (e *TextTooLongError) Error() string {
	return fmt.Sprintf("Text too long. Maximum %d characters allowed.", e.Limit)
}

// Result holds the outcome of a single translation.
type Result struct {
	Success         bool          `json:"success"`
	OriginalText    string        `json:"original_text,omitempty"`
	TranslatedText  string        `json:"translated_text,omitempty"`
	Confidence      float64       `json:"confidence,omitempty"`
	ProcessingTime  time.Duration `json:"-"`
	WordCount       int           `json:"word_count,omitempty"`
	RecognizedWords int           `json:"recognized_words,omitempty"`
	ServiceUsed     string        `json:"service_used,omitempty"`
	Error           string        `json:"error,omitempty"`
}

// ProcessingSeconds returns the processing time in seconds, matching the
// wire format of the upstream API.
func (r *Result) ProcessingSeconds() float64 {
	return r.ProcessingTime.Seconds()
}

// RecognitionRate returns the share of input words found in the dictionary.
// Always zero for API results, which do not report recognition.
func (r *Result) RecognitionRate() float64 {
	if r.WordCount == 0 {
		return 0
	}
	return float64(r.RecognizedWords) / float64(r.WordCount)
}

// Service translates historical Turkish text into modern Turkish.
type Service interface {
	Translate(ctx context.Context, text string) (*Result, error)
}

// HealthChecker is implemented by services that can probe their backend.
type HealthChecker interface {
	Health(ctx context.Context) error
}
