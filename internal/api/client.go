// Package api wraps the governance-document REST API. All endpoint
// wrappers funnel through a single request helper that normalizes error
// handling into the Kind taxonomy, so page code never inspects raw HTTP
// statuses.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds every request; the API has no long-running calls.
const DefaultTimeout = 30 * time.Second

// Client talks to the portal API. It is safe for concurrent use once
// constructed; SetToken is the only mutator and is called before any
// concurrent fan-out starts.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer token attached to every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the underlying HTTP client (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for request-level debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token (after login, or clears it after 401).
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the current bearer token, empty when logged out.
func (c *Client) Token() string { return c.token }

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string { return c.baseURL }

// do performs one JSON request. A nil out means the caller expects no body
// (or wants it discarded); HTTP 204 always succeeds with out untouched.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed before reaching server",
			zap.String("method", method), zap.String("path", path), zap.Error(err))
		return &Error{Kind: KindNetwork, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("api call",
		zap.String("method", method), zap.String("path", path), zap.Int("status", resp.StatusCode))

	switch {
	case resp.StatusCode == http.StatusNoContent:
		return nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return &Error{Kind: KindNotFound, Status: resp.StatusCode, Message: errorMessage(resp.Body, "resource not found")}
	case resp.StatusCode == http.StatusUnauthorized:
		return &Error{Kind: KindUnauthorized, Status: resp.StatusCode, Message: errorMessage(resp.Body, "authentication required")}
	case resp.StatusCode == http.StatusForbidden:
		return &Error{Kind: KindForbidden, Status: resp.StatusCode, Message: errorMessage(resp.Body, "permission denied")}
	case resp.StatusCode >= 500:
		// Never surface 5xx bodies; they tend to be stack traces.
		return &Error{Kind: KindServer, Status: resp.StatusCode, Message: "server error, try again later"}
	default:
		return &Error{Kind: KindRequest, Status: resp.StatusCode, Message: errorMessage(resp.Body, "request failed")}
	}
}

// errorMessage pulls the human-readable detail out of a JSON error body.
// The API emits either {"message": ...} or {"detail": ...}; fall back to
// the supplied default when the body is absent or unparsable.
func errorMessage(body io.Reader, fallback string) string {
	data, err := io.ReadAll(io.LimitReader(body, 8192))
	if err != nil || len(data) == 0 {
		return fallback
	}
	var parsed struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fallback
	}
	for _, msg := range []string{parsed.Message, parsed.Detail, parsed.Error} {
		if msg != "" {
			return msg
		}
	}
	return fallback
}
