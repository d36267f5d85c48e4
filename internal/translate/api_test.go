package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 10 * time.Millisecond}
}

func TestAPITranslateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req translateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "merhaba", req.Text)

		_ = json.NewEncoder(w).Encode(Result{
			Success:        true,
			OriginalText:   req.Text,
			TranslatedText: "hello",
			Confidence:     0.95,
		})
	}))
	defer srv.Close()

	svc := NewAPIService(srv.URL+"/translate", "test-key", WithRetryPolicy(fastRetryPolicy()))

	result, err := svc.Translate(context.Background(), "merhaba")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "hello", result.TranslatedText)
	assert.InDelta(t, 0.95, result.Confidence, 0.001)
	assert.Greater(t, result.ProcessingTime, time.Duration(0))
}

func TestAPITranslateErrorStatusNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewAPIService(srv.URL+"/translate", "", WithRetryPolicy(fastRetryPolicy()))

	result, err := svc.Translate(context.Background(), "merhaba")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Translation service is currently unavailable", result.Error)
	assert.Equal(t, int32(1), calls.Load())
}

func TestAPITranslateRetriesTransportFailure(t *testing.T) {
	// A closed server produces connection errors on every attempt.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	svc := NewAPIService(url+"/translate", "", WithRetryPolicy(fastRetryPolicy()))

	result, err := svc.Translate(context.Background(), "merhaba")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Cannot connect to translation service", result.Error)
}

func TestAPITranslateRecoversAfterTransientFailure(t *testing.T) {
	var calls atomic.Int32
	flaky := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			// Drop the connection on the first attempt
			conn, _, err := w.(http.Hijacker).Hijack()
			require.NoError(t, err)
			_ = conn.Close()
			return
		}
		_ = json.NewEncoder(w).Encode(Result{Success: true, TranslatedText: "hello"})
	}))
	defer flaky.Close()

	svc := NewAPIService(flaky.URL+"/translate", "", WithRetryPolicy(fastRetryPolicy()))

	result, err := svc.Translate(context.Background(), "merhaba")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, int32(2), calls.Load())
}

func TestAPITranslateContextCancelled(t *testing.T) {
	// The handler must not block on the request context: the server only
	// notices the client going away once the body is read, which would
	// leave srv.Close waiting on the connection forever. Release it
	// explicitly once the client has given up.
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()

	svc := NewAPIService(srv.URL+"/translate", "", WithRetryPolicy(fastRetryPolicy()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := svc.Translate(ctx, "merhaba")
	close(release)
	assert.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAPIHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	svc := NewAPIService(srv.URL+"/translate", "")
	assert.NoError(t, svc.Health(context.Background()))

	bad := NewAPIService("http://127.0.0.1:1/translate", "")
	assert.Error(t, bad.Health(context.Background()))
}

func TestHealthURL(t *testing.T) {
	tests := []struct {
		endpoint string
		want     string
	}{
		{"http://localhost:8000/translate", "http://localhost:8000/health"},
		{"http://localhost:8000/api/translate", "http://localhost:8000/api/health"},
		{"http://localhost:8000", "http://localhost:8000/health"},
		{"http://localhost:8000/", "http://localhost:8000/health"},
	}

	for _, tt := range tests {
		svc := NewAPIService(tt.endpoint, "")
		assert.Equal(t, tt.want, svc.HealthURL(), "endpoint %s", tt.endpoint)
	}
}

func TestBackoffCapped(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 5, BaseDelay: time.Second, MaxDelay: 2 * time.Second}

	// Without jitter the exponential component is capped at MaxDelay.
	assert.Equal(t, time.Second, p.backoff(0, nil))
	assert.Equal(t, 2*time.Second, p.backoff(1, nil))
	assert.Equal(t, 2*time.Second, p.backoff(10, nil))
}
