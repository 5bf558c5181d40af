// Package transport is the only network path of the admin client. Every
// request picks up the current bearer token at call time, so a token
// refreshed mid-session is honored on the next call.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// TokenSource supplies the current bearer token. An empty string means no
// Authorization header is sent.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to the TokenSource interface
type TokenFunc func() string

// Token returns the current token
func (f TokenFunc) Token() string { return f() }

// APIError is a backend-rejected request (4xx/5xx) reduced to the uniform
// shape surfaced next to the triggering control.
type APIError struct {
	Status  int
	Message string
}

// Error returns the backend's message
func (e *APIError) Error() string {
	return e.Message
}

// Client issues requests against the REST backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        *zap.Logger

	// maxRetryTime caps backoff retries of idempotent GETs. Zero disables
	// retrying.
	maxRetryTime time.Duration
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRetry enables backoff retries of GET requests for up to maxElapsed
func WithRetry(maxElapsed time.Duration) Option {
	return func(c *Client) { c.maxRetryTime = maxElapsed }
}

// NewClient creates a Client for the given base URL
func NewClient(baseURL string, tokens TokenSource, log *zap.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tokens:     tokens,
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET and decodes the JSON response into out.
// Transport-level failures are retried with capped exponential backoff;
// backend rejections are not.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	op := func() error {
		err := c.do(ctx, http.MethodGet, path, query, nil, "", out)
		var apiErr *APIError
		if err != nil && !asAPIError(err, &apiErr) {
			// Transport failure, worth retrying
			return err
		}
		if err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}

	if c.maxRetryTime <= 0 {
		return c.do(ctx, http.MethodGet, path, query, nil, "", out)
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = c.maxRetryTime
	return backoff.Retry(op, backoff.WithContext(policy, ctx))
}

// PostJSON issues a POST with a JSON body
func (c *Client) PostJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.sendJSON(ctx, http.MethodPost, path, body, out)
}

// PutJSON issues a PUT with a JSON body
func (c *Client) PutJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.sendJSON(ctx, http.MethodPut, path, body, out)
}

// PatchJSON issues a PATCH with a JSON body
func (c *Client) PatchJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.sendJSON(ctx, http.MethodPatch, path, body, out)
}

// Delete issues a DELETE
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, "", nil)
}

// PostForm issues a POST with a multipart body
func (c *Client) PostForm(ctx context.Context, path string, form *Form, out interface{}) error {
	return c.sendForm(ctx, http.MethodPost, path, form, out)
}

// PatchForm issues a PATCH with a multipart body
func (c *Client) PatchForm(ctx context.Context, path string, form *Form, out interface{}) error {
	return c.sendForm(ctx, http.MethodPatch, path, form, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, nil, reader, "application/json", out)
}

func (c *Client) sendForm(ctx context.Context, method, path string, form *Form, out interface{}) error {
	body, contentType, err := form.Encode()
	if err != nil {
		return fmt.Errorf("encode form: %w", err)
	}
	return c.do(ctx, method, path, nil, body, contentType, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Message: errorMessage(data, resp)}
		c.log.Debug("request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

// errorMessage pulls a human-readable message out of an error body. The
// backend is inconsistent about the field name, so both "message" and
// "error" are tried before falling back to the status text.
func errorMessage(body []byte, resp *http.Response) string {
	if msg := gjson.GetBytes(body, "message"); msg.Exists() && msg.String() != "" {
		return msg.String()
	}
	if msg := gjson.GetBytes(body, "error"); msg.Exists() && msg.String() != "" {
		return msg.String()
	}
	if resp.Status != "" {
		return resp.Status
	}
	return fmt.Sprintf("HTTP error %d", resp.StatusCode)
}

func asAPIError(err error, target **APIError) bool {
	return errors.As(err, target)
}
