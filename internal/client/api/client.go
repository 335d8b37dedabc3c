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

	"github.com/google/uuid"
)

const defaultTimeout = 15 * time.Second

// TokenSource yields the credential token attached to outgoing requests.
// An empty string means "not authenticated": no Authorization header is sent.
type TokenSource interface {
	Token() string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. Useful in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout. Non-positive values keep the
// default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// Header is a caller-supplied header override; it wins over the headers the
// client sets itself.
type Header struct {
	Name  string
	Value string
}

// Client issues JSON requests against the API origin. It attaches the
// bearer token on every call and normalizes failures: transport errors wrap
// ErrUnavailable, failing statuses become *Error. It never mutates session
// state itself.
type Client struct {
	baseURL string
	tokens  TokenSource
	http    *http.Client
}

// NewClient builds a Client for the given origin. tokens may be nil for a
// client that never authenticates.
func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do performs one round trip: marshal body, set headers, call, decode into
// out. Success bodies that are empty or not valid JSON are treated as an
// empty object and leave out untouched.
func (c *Client) Do(ctx context.Context, method, path string, body, out any, extra ...Header) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	for _, h := range extra {
		req.Header.Set(h.Name, h.Value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	// The server occasionally answers 2xx with an empty body.
	_ = json.Unmarshal(data, out)
	return nil
}
