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
)

// Client is a thin JSON/HTTP client for the sooth backend. Each call is a
// single fire-once request: no retries, no backoff.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken sets the bearer token sent with authenticated requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Error carries the backend's human-readable failure detail.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	return e.Detail
}

// ProcessMessage submits a check-in message for risk analysis.
func (c *Client) ProcessMessage(ctx context.Context, req ProcessMessageRequest) (*ProcessMessageResponse, error) {
	var resp ProcessMessageResponse
	if err := c.do(ctx, http.MethodPost, "/messages/process", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RiskProfile fetches the aggregated risk profile for a user.
func (c *Client) RiskProfile(ctx context.Context, userID string) (*RiskProfileResponse, error) {
	var resp RiskProfileResponse
	if err := c.do(ctx, http.MethodGet, "/alerts/risk-profile/"+userID, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CommunityPosts lists recent community posts.
func (c *Client) CommunityPosts(ctx context.Context) ([]CommunityPost, error) {
	var resp []CommunityPost
	if err := c.do(ctx, http.MethodGet, "/community/posts", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateCommunityPost publishes a post to the community feed.
func (c *Client) CreateCommunityPost(ctx context.Context, req CreatePostRequest) (*CommunityPost, error) {
	var resp CommunityPost
	if err := c.do(ctx, http.MethodPost, "/community/posts", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do serializes body (if any), performs the request, and decodes a 2xx
// response into out. Any non-2xx status becomes an *Error carrying the
// backend's `detail` string when one can be parsed, or a generic message
// otherwise. A parse failure on the error body never surfaces as its own
// error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFrom(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// errorFrom builds an *Error from a non-2xx response body.
func (c *Client) errorFrom(resp *http.Response) error {
	apiErr := &Error{
		StatusCode: resp.StatusCode,
		Detail:     fmt.Sprintf("request failed with status %d", resp.StatusCode),
	}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Detail != "" {
		apiErr.Detail = body.Detail
	}

	return apiErr
}
