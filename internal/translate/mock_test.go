package translate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMock() *MockService {
	m := NewMockService(nil)
	m.SetDelay(0)
	return m
}

func TestMockTranslateKnownWords(t *testing.T) {
	m := newTestMock()

	result, err := m.Translate(context.Background(), "merhaba kitap")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "hello book", result.TranslatedText)
	assert.Equal(t, 2, result.WordCount)
	assert.Equal(t, 2, result.RecognizedWords)
	assert.InDelta(t, 0.9, result.Confidence, 0.001)
}

func TestMockTranslateUnknownWordsBracketed(t *testing.T) {
	m := newTestMock()

	result, err := m.Translate(context.Background(), "merhaba dünya")
	require.NoError(t, err)

	assert.Equal(t, "hello [dünya]", result.TranslatedText)
	assert.Equal(t, 1, result.RecognizedWords)
	// (0.9 + 0.3) / 2
	assert.InDelta(t, 0.6, result.Confidence, 0.001)
	assert.InDelta(t, 0.5, result.RecognitionRate(), 0.001)
}

func TestMockTranslateCaseInsensitive(t *testing.T) {
	m := newTestMock()

	result, err := m.Translate(context.Background(), "MERHABA Selam")
	require.NoError(t, err)

	assert.Equal(t, "hello greetings", result.TranslatedText)
	assert.Equal(t, 2, result.RecognizedWords)
}

func TestMockTranslateWhitespaceOnly(t *testing.T) {
	m := newTestMock()

	result, err := m.Translate(context.Background(), "   ")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 0, result.WordCount)
	assert.Zero(t, result.Confidence)
	assert.Empty(t, result.TranslatedText)
}

func TestMockTranslateHonorsContextCancellation(t *testing.T) {
	m := NewMockService(nil)
	m.SetDelay(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Translate(ctx, "merhaba")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMockHealth(t *testing.T) {
	m := newTestMock()
	assert.NoError(t, m.Health(context.Background()))
}
