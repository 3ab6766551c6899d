// Package algonest provides a Go client for the AlgoNest API.
//
// AlgoNest is a coding-practice backend: users browse problems, run code
// against the visible test cases and submit it for judging against the
// hidden ones.
//
// Usage:
//
//	client := algonest.New("http://localhost:8080")
//
//	// Sign in; the session token is kept on the client
//	_, err := client.Auth.Login(ctx, "ada@example.com", "Sup3r$ecret")
//
//	// Run code against the visible test cases
//	res, err := client.Submissions.Run(ctx, problemID, algonest.Code{
//	    Language: "python",
//	    Source:   "print(sum(map(int, input().split())))",
//	})
package algonest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// sessionCookie is the cookie the server sets on login.
const sessionCookie = "token"

// Client is the AlgoNest API client.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string

	// Service accessors
	Auth        *AuthService
	Problems    *ProblemsService
	Submissions *SubmissionsService
	Profile     *ProfileService
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithToken starts the client with an existing session token.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// New creates an AlgoNest client.
// baseURL should be the root URL (e.g. "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, o := range opts {
		o(c)
	}
	c.Auth = &AuthService{c: c}
	c.Problems = &ProblemsService{c: c}
	c.Submissions = &SubmissionsService{c: c}
	c.Profile = &ProfileService{c: c}
	return c
}

// Token returns the current session token, or "" when signed out.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Health checks that the AlgoNest server is reachable and healthy.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	return doRequest[HealthResponse](ctx, c, http.MethodGet, "/health", nil, http.StatusOK)
}

// --- internal helpers ---

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("algonest: marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return req, nil
}

// send performs the request and returns the response when its status is one
// of expectedStatuses. The caller closes the body.
func (c *Client) send(ctx context.Context, method, path string, query map[string]string, body any, expectedStatuses ...int) (*http.Response, error) {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	if len(query) > 0 {
		q := req.URL.Query()
		for k, v := range query {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	for _, s := range expectedStatuses {
		if resp.StatusCode == s {
			return resp, nil
		}
	}
	defer resp.Body.Close()
	return nil, parseError(resp)
}

func doRequest[T any](ctx context.Context, c *Client, method, path string, body any, expectedStatus int) (*T, error) {
	return doRequestWithQuery[T](ctx, c, method, path, nil, body, expectedStatus)
}

func doRequestWithQuery[T any](ctx context.Context, c *Client, method, path string, query map[string]string, body any, expectedStatuses ...int) (*T, error) {
	resp, err := c.send(ctx, method, path, query, body, expectedStatuses...)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("algonest: decode response: %w", err)
	}
	return &out, nil
}

func parseError(resp *http.Response) *APIError {
	e := &APIError{StatusCode: resp.StatusCode, RetryAfter: resp.Header.Get("Retry-After")}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		e.Message = body.Error
	} else {
		e.Message = http.StatusText(resp.StatusCode)
	}
	return e
}
