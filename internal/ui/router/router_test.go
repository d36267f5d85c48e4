package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/zym-starx/bucolin-translator-website/internal/testutil"
	"github.com/zym-starx/bucolin-translator-website/internal/ui/features"
)

func setupRouter(t *testing.T, environment string) chi.Router {
	t.Helper()

	fixture := features.SetupTestFixture(t)
	fixture.Config.Environment = environment

	r := chi.NewRouter()
	SetupRoutes(r, Deps{
		Templates:    fixture.Templates,
		Translator:   fixture.Translator,
		Service:      fixture.Service,
		Config:       fixture.Config,
		History:      fixture.History,
		Lexicon:      fixture.Lexicon,
		SessionStore: fixture.SessionStore,
		Notifier:     fixture.Notifier,
		Logger:       testutil.NewTestLogger(t),
	})
	return r
}

func TestAdminMountedInDevelopment(t *testing.T) {
	r := setupRouter(t, "development")

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminHiddenInProduction(t *testing.T) {
	r := setupRouter(t, "production")

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPublicRoutes(t *testing.T) {
	r := setupRouter(t, "production")

	for _, path := range []string{"/", "/about", "/research", "/team", "/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "GET %s", path)
	}
}
