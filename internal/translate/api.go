package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"
)

const (
	defaultRequestTimeout = 30 * time.Second
	healthTimeout         = 3 * time.Second
)

// RetryPolicy defines automatic retry behavior for transport failures.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// BaseDelay is the base delay for exponential backoff between retries.
	BaseDelay time.Duration
	// MaxDelay caps the exponential growth.
	MaxDelay time.Duration
}

// DefaultRetryPolicy matches the demo deployment: three attempts with
// exponential backoff starting at one second.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    30 * time.Second,
	}
}

// backoff computes the delay before retry number attempt (zero-based):
// min(base * 2^attempt, max) plus jitter up to base.
func (p RetryPolicy) backoff(attempt int, rng *rand.Rand) time.Duration {
	delay := p.BaseDelay * (1 << attempt)
	if delay > p.MaxDelay {
		delay = p.MaxDelay
	}
	if rng != nil && p.BaseDelay > 0 {
		delay += time.Duration(rng.Int63n(int64(p.BaseDelay)))
	}
	return delay
}

// APIService calls the production translation API.
type APIService struct {
	endpoint string
	apiKey   string
	client   *http.Client
	policy   RetryPolicy
	rng      *rand.Rand
}

// APIOption configures an APIService.
type APIOption func(*APIService)

// WithHTTPClient overrides the HTTP client. Tests use this to shorten
// timeouts.
func WithHTTPClient(c *http.Client) APIOption {
	return func(s *APIService) { s.client = c }
}

// WithRetryPolicy overrides the retry policy.
func WithRetryPolicy(p RetryPolicy) APIOption {
	return func(s *APIService) { s.policy = p }
}

// NewAPIService creates a client for the translation API at endpoint.
// The apiKey is optional; when set it is sent as a bearer token.
func NewAPIService(endpoint, apiKey string, opts ...APIOption) *APIService {
	s := &APIService{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: defaultRequestTimeout},
		policy:   DefaultRetryPolicy(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Endpoint returns the configured translate endpoint URL.
func (s *APIService) Endpoint() string {
	return s.endpoint
}

// translateRequest is the upstream wire format.
type translateRequest struct {
	Text string `json:"text"`
}

// Translate posts the text to the API. Transport failures are retried with
// exponential backoff; an HTTP error status is returned immediately as
// ErrServiceUnavailable.
func (s *APIService) Translate(ctx context.Context, text string) (*Result, error) {
	payload, err := json.Marshal(translateRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	start := time.Now()

	for attempt := 0; attempt < s.policy.MaxAttempts; attempt++ {
		if attempt > 0 {
			timer := time.NewTimer(s.policy.backoff(attempt-1, s.rng))
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}

		result, err := s.doRequest(ctx, payload)
		if err == nil {
			result.ProcessingTime = time.Since(start)
			return result, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !isTransient(err) {
			return &Result{
				Success:        false,
				Error:          err.Error(),
				ProcessingTime: time.Since(start),
			}, nil
		}
	}

	return &Result{
		Success:        false,
		Error:          ErrCannotConnect.Error(),
		ProcessingTime: time.Since(start),
	}, nil
}

func (s *APIService) doRequest(ctx context.Context, payload []byte) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &transientError{err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, ErrServiceUnavailable
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

// Health probes the /health sibling of the translate endpoint.
func (s *APIService) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.HealthURL(), nil)
	if err != nil {
		return fmt.Errorf("failed to build health request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}
	return nil
}

// HealthURL derives the health endpoint from the translate endpoint.
func (s *APIService) HealthURL() string {
	if strings.HasSuffix(s.endpoint, "/translate") {
		return strings.TrimSuffix(s.endpoint, "/translate") + "/health"
	}
	return strings.TrimRight(s.endpoint, "/") + "/health"
}

// transientError marks transport-level failures worth retrying.
type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

func isTransient(err error) bool {
	_, ok := err.(*transientError)
	return ok
}
