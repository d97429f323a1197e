package libs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// ErrorKind classifies upstream call failures so callers can react without
// string matching.
type ErrorKind string

const (
	// ErrKindTransport covers network failures and an open circuit breaker.
	ErrKindTransport ErrorKind = "transport"
	// ErrKindDecode covers non-JSON or otherwise malformed payloads.
	ErrKindDecode ErrorKind = "decode"
	// ErrKindRejected covers non-2xx statuses from the commerce API.
	ErrKindRejected ErrorKind = "rejected"
)

const genericErrorMessage = "Unexpected server error"

type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("commerce api: %s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("commerce api: %s: %s", e.Kind, e.Message)
}

// AsAPIError unwraps err into an *APIError when possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// HTTPClient is the single channel to the remote commerce API. It injects the
// bearer credential per call, enforces the request timeout and fast-fails
// through a circuit breaker. It never retries.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[*http.Response]
	logger  *zap.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPClient {
	settings := gobreaker.Settings{
		Name:    "commerce-api",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}

	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker[*http.Response](settings),
		logger:  logger,
	}
}

// Do issues one request against the commerce API. A non-nil out receives the
// decoded 2xx body. Failures come back as *APIError, classified by kind; the
// message of a non-2xx envelope is surfaced when the server provides one.
func (c *HTTPClient) Do(ctx context.Context, method, path, token string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &APIError{Kind: ErrKindDecode, Message: genericErrorMessage}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &APIError{Kind: ErrKindTransport, Message: genericErrorMessage}
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		return c.client.Do(req)
	})
	if err != nil {
		c.logger.Warn("commerce api request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return &APIError{Kind: ErrKindTransport, Message: genericErrorMessage}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Kind: ErrKindTransport, Message: genericErrorMessage}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := genericErrorMessage
		var envelope struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &envelope) == nil && envelope.Message != "" {
			message = envelope.Message
		}
		return &APIError{Kind: ErrKindRejected, StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			c.logger.Warn("commerce api returned malformed payload",
				zap.String("method", method),
				zap.String("path", path),
				zap.Error(err))
			return &APIError{Kind: ErrKindDecode, StatusCode: resp.StatusCode, Message: genericErrorMessage}
		}
	}
	return nil
}

func (c *HTTPClient) Get(ctx context.Context, path, token string, out interface{}) error {
	return c.Do(ctx, http.MethodGet, path, token, nil, out)
}

func (c *HTTPClient) Post(ctx context.Context, path, token string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPost, path, token, body, out)
}

func (c *HTTPClient) Patch(ctx context.Context, path, token string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPatch, path, token, body, out)
}

func (c *HTTPClient) Delete(ctx context.Context, path, token string) error {
	return c.Do(ctx, http.MethodDelete, path, token, nil, nil)
}
