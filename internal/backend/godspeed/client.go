// Package godspeed implements the service.Service interface against
// the Godspeed HTTP API.
package godspeed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"godspeed/internal/config"
	"godspeed/internal/service"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.godspeedapp.com"

	// APITimeout is the timeout for API calls.
	APITimeout = 5 * time.Second
)

// Client implements service.Service using the Godspeed REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client whose requests carry the given bearer
// credential.
func New(ctx context.Context, apiKey string) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: apiKey})
	return &Client{
		baseURL: DefaultBaseURL,
		http:    oauth2.NewClient(ctx, src),
	}
}

// NewWithBaseURL creates a client against a custom endpoint (for
// testing against httptest servers).
func NewWithBaseURL(ctx context.Context, apiKey, baseURL string) *Client {
	c := New(ctx, apiKey)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

type refItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type listsResponse struct {
	Lists []refItem `json:"lists"`
}

type labelsResponse struct {
	Labels []refItem `json:"labels"`
}

// FetchLists returns all lists as lowercased name -> id.
func (c *Client) FetchLists(ctx context.Context) (map[string]string, error) {
	var resp listsResponse
	if err := c.getJSON(ctx, "/lists", &resp); err != nil {
		return nil, fmt.Errorf("fetch lists: %w", err)
	}
	return toMapping(resp.Lists), nil
}

// FetchLabels returns all labels as lowercased name -> id.
func (c *Client) FetchLabels(ctx context.Context) (map[string]string, error) {
	var resp labelsResponse
	if err := c.getJSON(ctx, "/labels", &resp); err != nil {
		return nil, fmt.Errorf("fetch labels: %w", err)
	}
	return toMapping(resp.Labels), nil
}

// SubmitTask POSTs the task. Any non-2xx status is an error.
func (c *Client) SubmitTask(ctx context.Context, task service.TaskRequest) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	body, err := json.Marshal(task)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tasks", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return wrapError(err)
	}
	defer resp.Body.Close()

	return statusError(resp.StatusCode, resp.Status)
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return wrapError(err)
	}
	defer resp.Body.Close()

	if err := statusError(resp.StatusCode, resp.Status); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError converts a non-2xx response into an error.
func statusError(code int, status string) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("credential rejected (check %s): %s", config.EnvAPIKey, status)
	default:
		return fmt.Errorf("API error: %s", status)
	}
}

func toMapping(items []refItem) map[string]string {
	m := make(map[string]string, len(items))
	for _, item := range items {
		m[strings.ToLower(item.Name)] = item.ID
	}
	return m
}

// wrapError rewrites low-level transport errors into user-readable
// messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "context deadline exceeded") {
		return fmt.Errorf("request timed out")
	}

	return err
}
