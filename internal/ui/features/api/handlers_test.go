package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zym-starx/bucolin-translator-website/internal/testutil"
	"github.com/zym-starx/bucolin-translator-website/internal/translate"
	"github.com/zym-starx/bucolin-translator-website/internal/ui/features"
)

func setupTestHandlers(t *testing.T) *Handlers {
	t.Helper()

	fixture := features.SetupTestFixture(t)
	return NewHandlers(fixture.Translator, fixture.Service, fixture.Config, testutil.NewTestLogger(t))
}

func TestTranslateEndpoint(t *testing.T) {
	h := setupTestHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/api/translate", strings.NewReader(`{"text":"merhaba ev"}`))
	rec := httptest.NewRecorder()

	h.HandleTranslate(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var result translate.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, "hello house", result.TranslatedText)
	assert.Equal(t, 2, result.WordCount)
	assert.Equal(t, 2, result.RecognizedWords)
	assert.InDelta(t, 0.9, result.Confidence, 0.001)
	assert.Equal(t, "Mock Service (Development)", result.ServiceUsed)
}

func TestTranslateEndpoint_EmptyText(t *testing.T) {
	h := setupTestHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/api/translate", strings.NewReader(`{"text":""}`))
	rec := httptest.NewRecorder()

	h.HandleTranslate(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var result translate.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Equal(t, "Please enter some text to translate", result.Error)
}

func TestTranslateEndpoint_InvalidJSON(t *testing.T) {
	h := setupTestHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/api/translate", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	h.HandleTranslate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	h := setupTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.HandleHealth(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "ok", resp.Backend)
	assert.Equal(t, "Mock Service (Development)", resp.Service)
}
