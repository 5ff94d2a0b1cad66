// ABOUTME: Configured HTTP client for the DocTalk backend API
// ABOUTME: Owns the base URL and the mutable bearer credential attached to requests

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Client is the single entry point for all backend calls. The base URL is
// fixed at construction; the bearer credential is the only mutable shared
// setting and only Login/Logout touch it.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter

	mu    sync.RWMutex
	token string
}

// New builds a client for the backend at baseURL. The /api prefix is
// appended here so callers pass bare paths like "/profile/".
func New(baseURL string, timeout time.Duration, chatRPS float64) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api",
		http: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(chatRPS), 1),
	}
}

// SetToken installs the access token attached to every subsequent request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken removes the attached credential.
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Token returns the currently attached access token, or "".
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// doJSON performs a JSON request against path and decodes the response into
// out when non-nil. Status >= 400 is returned as *Error.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// send decorates the request with the bearer credential and a correlation ID,
// executes it, and decodes the response.
func (c *Client) send(req *http.Request, out any) error {
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	slog.Debug("API request", "method", req.Method, "path", req.URL.Path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := parseError(resp)
		slog.Debug("API error", "status", resp.StatusCode, "request_id", requestID, "detail", apiErr.Detail)
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response from %s: %w", req.URL.Path, err)
		}
	}
	return nil
}
