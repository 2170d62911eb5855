// Package api implements the authenticated HTTP client the console uses for
// every backend call. One Client instance is shared process-wide; it carries
// a single mutable bearer credential, so exactly one identity is active at a
// time and changing it affects all subsequent requests uniformly.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/dvillarroel/actifijo/internal/common"
)

type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// New returns a Client bound to baseURL (e.g. "http://127.0.0.1:8000/api").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// SetToken installs the bearer credential used by all subsequent requests.
// An empty token removes the credential.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken removes the active credential.
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Token returns the currently installed credential ("" when none).
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set(common.AuthorizationHeader, "Bearer "+token)
	}
	return req, nil
}

// roundTrip performs the request and returns the raw body. Transport
// failures map to common.ErrUnavailable; non-2xx statuses map through
// mapStatusError. No retries, ever.
func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body any) ([]byte, string, error) {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", mapStatusError(resp.StatusCode, data)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// JSON issues a request and decodes the JSON response into out (skipped when
// out is nil or the response is empty).
func (c *Client) JSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	data, _, err := c.roundTrip(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.JSON(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.JSON(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.JSON(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.JSON(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.JSON(ctx, http.MethodDelete, path, nil, nil, nil)
}

// GetBinary fetches a binary payload (report exports) and returns it along
// with the backend-provided content type.
func (c *Client) GetBinary(ctx context.Context, path string, query url.Values) ([]byte, string, error) {
	return c.roundTrip(ctx, http.MethodGet, path, query, nil)
}
