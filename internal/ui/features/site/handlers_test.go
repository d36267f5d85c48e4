package site

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/zym-starx/bucolin-translator-website/internal/ui/features"
)

func TestSitePages(t *testing.T) {
	fixture := features.SetupTestFixture(t)

	r := chi.NewRouter()
	SetupRoutes(r, fixture.Templates)

	tests := []struct {
		path     string
		wantBody []string
	}{
		{"/about", []string{"About", "BUCOLIN"}},
		{"/research", []string{"Research", "Ottoman Turkish"}},
		{"/team", []string{"Team"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}
