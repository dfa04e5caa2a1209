// Package tracker provides a client for the issue tracker REST API.
package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the backend address used when none is configured.
const DefaultBaseURL = "http://127.0.0.1:8000"

// Client is an issue tracker REST API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new tracker API client.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do executes an HTTP request and returns the response body. Non-2xx
// responses are converted into typed errors: 404 maps to KindNotFound,
// other statuses to KindServer with the status code attached.
func (c *Client) do(ctx context.Context, op, method, path string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Op: op, Err: fmt.Errorf("creating request: %w", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Op: op, Err: fmt.Errorf("executing request: %w", err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Op: op, Err: fmt.Errorf("reading response body: %w", err)}
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, &Error{Kind: KindNotFound, Op: op, StatusCode: resp.StatusCode}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &Error{
			Kind:       KindServer,
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    errorDetail(data),
		}
	}

	return data, nil
}

// errorDetail pulls a short message out of an error response body.
// Falls back to the raw body, truncated.
func errorDetail(data []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err == nil && len(body.Detail) > 0 {
		var s string
		if json.Unmarshal(body.Detail, &s) == nil {
			return s
		}
		var obj struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body.Detail, &obj) == nil && obj.Message != "" {
			return obj.Message
		}
	}
	msg := strings.TrimSpace(string(data))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}

// CheckHealth verifies the backend is reachable and operational.
func (c *Client) CheckHealth(ctx context.Context) (*Health, error) {
	data, err := c.do(ctx, "health check", http.MethodGet, "/health", nil)
	if err != nil {
		return nil, err
	}
	var h Health
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, &Error{Kind: KindNetwork, Op: "health check", Err: fmt.Errorf("parsing response: %w", err)}
	}
	return &h, nil
}

// ListIssues fetches a page of issues matching the given options.
func (c *Client) ListIssues(ctx context.Context, opts ListOptions) (*ListResult, error) {
	path := "/issues"
	if q := opts.query(); len(q) > 0 {
		path += "?" + q.Encode()
	}
	data, err := c.do(ctx, "list issues", http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var result ListResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, &Error{Kind: KindNetwork, Op: "list issues", Err: fmt.Errorf("parsing response: %w", err)}
	}
	return &result, nil
}

// GetIssue fetches a single issue by id.
func (c *Client) GetIssue(ctx context.Context, id string) (*Issue, error) {
	op := "get issue " + id
	data, err := c.do(ctx, op, http.MethodGet, "/issues/"+id, nil)
	if err != nil {
		return nil, err
	}
	var issue Issue
	if err := json.Unmarshal(data, &issue); err != nil {
		return nil, &Error{Kind: KindNetwork, Op: op, Err: fmt.Errorf("parsing response: %w", err)}
	}
	return &issue, nil
}

// CreateIssue creates a new issue and returns it with its generated id.
// An empty title is rejected locally; no request is made.
func (c *Client) CreateIssue(ctx context.Context, req CreateRequest) (*Issue, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, &Error{Kind: KindValidation, Op: "create issue", Message: "title is required"}
	}
	if req.Status == "" {
		req.Status = StatusOpen
	}
	if req.Priority == "" {
		req.Priority = PriorityMedium
	}

	jsonBody, err := json.Marshal(req)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Op: "create issue", Err: fmt.Errorf("marshaling request: %w", err)}
	}
	data, err := c.do(ctx, "create issue", http.MethodPost, "/issues", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	var issue Issue
	if err := json.Unmarshal(data, &issue); err != nil {
		return nil, &Error{Kind: KindNetwork, Op: "create issue", Err: fmt.Errorf("parsing response: %w", err)}
	}
	return &issue, nil
}

// UpdateIssue applies a partial update to an issue and returns the updated
// issue. The backend's update verb is PUT.
func (c *Client) UpdateIssue(ctx context.Context, id string, req UpdateRequest) (*Issue, error) {
	op := "update issue " + id
	jsonBody, err := json.Marshal(req)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Op: op, Err: fmt.Errorf("marshaling request: %w", err)}
	}
	data, err := c.do(ctx, op, http.MethodPut, "/issues/"+id, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	var issue Issue
	if err := json.Unmarshal(data, &issue); err != nil {
		return nil, &Error{Kind: KindNetwork, Op: op, Err: fmt.Errorf("parsing response: %w", err)}
	}
	return &issue, nil
}
