package translate

import (
	"context"
	"strings"
	"time"

	"github.com/zym-starx/bucolin-translator-website/internal/config"
	"github.com/zym-starx/bucolin-translator-website/internal/lexicon"
)

// MockService is a dictionary-based stand-in for the real model API.
// It translates word by word: dictionary hits score well above the
// confidence threshold, misses are rendered bracketed with a low score.
type MockService struct {
	lexicon *lexicon.Lexicon
	delay   time.Duration
}

// NewMockService creates a mock service backed by the given lexicon.
func NewMockService(lex *lexicon.Lexicon) *MockService {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &MockService{
		lexicon: lex,
		delay:   config.MockProcessingTime,
	}
}

// SetDelay overrides the simulated processing delay. Tests use zero.
func (m *MockService) SetDelay(d time.Duration) {
	m.delay = d
}

// Lexicon returns the backing dictionary.
func (m *MockService) Lexicon() *lexicon.Lexicon {
	return m.lexicon
}

// Translate performs a word-for-word dictionary translation.
func (m *MockService) Translate(ctx context.Context, text string) (*Result, error) {
	if m.delay > 0 {
		timer := time.NewTimer(m.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	words := strings.Fields(strings.ToLower(text))
	translated := make([]string, 0, len(words))
	recognized := 0
	confidenceSum := 0.0

	for _, word := range words {
		if modern, ok := m.lexicon.Lookup(word); ok {
			translated = append(translated, modern)
			confidenceSum += config.MockConfidenceThreshold + 0.2
			recognized++
		} else {
			translated = append(translated, "["+word+"]")
			confidenceSum += 0.3
		}
	}

	confidence := 0.0
	if len(words) > 0 {
		confidence = confidenceSum / float64(len(words))
	}

	return &Result{
		Success:         true,
		OriginalText:    text,
		TranslatedText:  strings.Join(translated, " "),
		Confidence:      confidence,
		ProcessingTime:  m.delay,
		WordCount:       len(words),
		RecognizedWords: recognized,
	}, nil
}

// Health reports the mock service as always available.
func (m *MockService) Health(_ context.Context) error {
	return nil
}
