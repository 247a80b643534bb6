// Package api is the typed client for the RealWorldEd REST backend.
//
// A single Client carries the cross-cutting request policy (bearer token,
// global 401 handling); the per-domain facades (Auth, Sessions, Chat,
// Evaluation) are thin typed wrappers over it.
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

	"realworlded-cli/internal/logger"
)

// Client sends JSON requests to the backend.
//
// TokenSource is read on every request: when it returns a non-empty token the
// Authorization header is set, otherwise the request goes out unauthenticated.
// OnUnauthorized runs once per 401 response, before the error is returned,
// regardless of which call site issued the request.
type Client struct {
	baseURL string
	http    *http.Client

	TokenSource    func() string
	OnUnauthorized func()
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// do performs one request. body and out may be nil; out is filled from the
// response JSON on 2xx. Non-2xx responses become *APIError; nothing is
// retried.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.TokenSource != nil {
		if tok := c.TokenSource(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	logger.Debug("api request", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Detail: readDetail(resp.Body)}
		if resp.StatusCode == http.StatusUnauthorized && c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// readDetail pulls FastAPI's {"detail": "..."} out of an error body.
// Detail can also be a structured validation object; anything non-string is
// flattened to its JSON text.
func readDetail(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, 1<<16))
	if err != nil {
		return ""
	}
	var wrapper struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(b, &wrapper); err != nil || len(wrapper.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(wrapper.Detail, &s); err == nil {
		return s
	}
	return string(wrapper.Detail)
}

// API bundles the domain facades over one shared client.
type API struct {
	Auth       *AuthAPI
	Sessions   *SessionsAPI
	Chat       *ChatAPI
	Evaluation *EvaluationAPI
}

func New(client *Client) *API {
	return &API{
		Auth:       &AuthAPI{c: client},
		Sessions:   &SessionsAPI{c: client},
		Chat:       &ChatAPI{c: client},
		Evaluation: &EvaluationAPI{c: client},
	}
}
