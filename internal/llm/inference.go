package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Retry policy defaults for the inference service. A 503 means the remote
// model is still loading, so the client waits a little longer each attempt.
const (
	defaultMaxAttempts    = 3
	defaultBackoffStep    = time.Second
	defaultAttemptTimeout = 5 * time.Second
)

// classifyRequest is the wire shape of a zero-shot classification call.
type classifyRequest struct {
	Texts           []string `json:"texts"`
	CandidateLabels []string `json:"candidate_labels"`
}

// InferenceClient calls a hosted zero-shot classification endpoint with
// bounded retries and linearly increasing backoff. Safe for concurrent use.
type InferenceClient struct {
	endpoint       string
	apiKey         string
	httpClient     *http.Client
	maxAttempts    int
	backoffStep    time.Duration
	attemptTimeout time.Duration
}

// InferenceOption customizes an InferenceClient.
type InferenceOption func(*InferenceClient)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) InferenceOption {
	return func(c *InferenceClient) { c.httpClient = client }
}

// WithMaxAttempts sets the retry budget, minimum 1.
func WithMaxAttempts(n int) InferenceOption {
	return func(c *InferenceClient) {
		if n >= 1 {
			c.maxAttempts = n
		}
	}
}

// WithBackoffStep sets the linear backoff increment between attempts.
func WithBackoffStep(step time.Duration) InferenceOption {
	return func(c *InferenceClient) { c.backoffStep = step }
}

// WithAttemptTimeout bounds each individual attempt.
func WithAttemptTimeout(timeout time.Duration) InferenceOption {
	return func(c *InferenceClient) {
		if timeout > 0 {
			c.attemptTimeout = timeout
		}
	}
}

// NewInferenceClient creates a client for the given classification endpoint.
// The API key may be empty for endpoints that do not require one.
func NewInferenceClient(endpoint, apiKey string, opts ...InferenceOption) *InferenceClient {
	c := &InferenceClient{
		endpoint:       endpoint,
		apiKey:         apiKey,
		httpClient:     &http.Client{},
		maxAttempts:    defaultMaxAttempts,
		backoffStep:    defaultBackoffStep,
		attemptTimeout: defaultAttemptTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify scores texts against candidate labels. A 503 from the service is
// retried with backoff; any other non-2xx status or a malformed body is a
// hard failure. Always returns a *RemoteServiceError on failure.
func (c *InferenceClient) Classify(ctx context.Context, texts []string, candidateLabels []string) (Classification, error) {
	body, err := json.Marshal(classifyRequest{Texts: texts, CandidateLabels: candidateLabels})
	if err != nil {
		return Classification{}, &RemoteServiceError{Op: "classify", Err: err}
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			// Linear backoff: the wait grows with each attempt.
			wait := time.Duration(attempt-1) * c.backoffStep
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return Classification{}, &RemoteServiceError{Op: "classify", Err: ctx.Err()}
			}
		}

		result, retryable, err := c.attempt(ctx, body)
		if err == nil {
			return result, nil
		}
		if !retryable {
			return Classification{}, err
		}
		lastErr = err
	}
	return Classification{}, lastErr
}

// attempt performs one HTTP round trip. The second return value reports
// whether the failure is worth retrying.
func (c *InferenceClient) attempt(ctx context.Context, body []byte) (Classification, bool, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.attemptTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Classification{}, false, &RemoteServiceError{Op: "classify", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Classification{}, true, &RemoteServiceError{Op: "classify", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusServiceUnavailable {
		io.Copy(io.Discard, resp.Body)
		return Classification{}, true, &RemoteServiceError{
			Op:         "classify",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("model loading"),
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return Classification{}, false, &RemoteServiceError{
			Op:         "classify",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status"),
		}
	}

	var result Classification
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Classification{}, false, &RemoteServiceError{Op: "classify", Err: fmt.Errorf("malformed response body: %w", err)}
	}
	if len(result.Labels) != len(result.Scores) {
		return Classification{}, false, &RemoteServiceError{
			Op:  "classify",
			Err: fmt.Errorf("malformed response: %d labels for %d scores", len(result.Labels), len(result.Scores)),
		}
	}
	return result, false, nil
}
