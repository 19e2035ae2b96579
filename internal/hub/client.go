// Package hub fetches emoji data from the remote emoji API.
package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"emojihub/internal/model"
)

// API paths consumed by the catalog.
const (
	PathAll        = "/api/all"
	PathCategories = "/api/categories"
	PathGroups     = "/api/groups"
)

// StatusError reports a non-2xx response.
type StatusError struct {
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d %s", e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

// Client talks to one emoji API deployment.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client for baseURL. A zero timeout means none.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// FetchAll returns every emoji record.
func (c *Client) FetchAll(ctx context.Context) ([]model.Emoji, error) {
	var out []model.Emoji
	if err := c.getJSON(ctx, PathAll, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchCategories returns the distinct category names.
func (c *Client) FetchCategories(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.getJSON(ctx, PathCategories, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchGroups returns the distinct group names.
func (c *Client) FetchGroups(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.getJSON(ctx, PathGroups, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "emojihub/"+model.Version)

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, resp.Body)
		return &StatusError{Path: path, StatusCode: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
