package gateclient

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

// refreshCookieName matches the cookie the service sets on register/login.
const refreshCookieName = "jwt"

// accessTokenLifetime mirrors the server's access token TTL, minus a buffer
// so the session refreshes before the token actually lapses.
const accessTokenLifetime = 15*time.Minute - 30*time.Second

// Client talks to a Gatehouse instance. It covers the unauthenticated
// endpoints and produces Sessions for the authenticated ones.
//
// The refresh token travels in a Secure http-only cookie, which net/http
// cookie jars refuse to replay over plain http. The client therefore tracks
// the cookie value itself instead of using a jar, so it works against local
// and containerized instances alike.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Session is an authenticated session: an access token plus the refresh
// cookie value backing it. Sessions auto-refresh the access token when it
// is close to expiry.
type Session struct {
	client *Client

	accessToken  string
	refreshToken string
	expiresAt    time.Time
	user         UserView
}

// Register creates a new account and returns an authenticated session.
func (c *Client) Register(ctx context.Context, username, email, password string) (*Session, error) {
	return c.authenticate(ctx, "/api/auth/register", http.StatusCreated, RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
}

// Login authenticates existing credentials and returns a session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	return c.authenticate(ctx, "/api/auth/login", http.StatusOK, LoginRequest{
		Email:    email,
		Password: password,
	})
}

func (c *Client) authenticate(ctx context.Context, path string, wantStatus int, body any) (*Session, error) {
	resp, err := c.postJSON(ctx, path, body, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return nil, apiErrorFrom(resp)
	}

	var auth AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	refresh := refreshTokenFrom(resp)
	if refresh == "" {
		return nil, fmt.Errorf("response carried no %s cookie", refreshCookieName)
	}

	return &Session{
		client:       c,
		accessToken:  auth.AccessToken,
		refreshToken: refresh,
		expiresAt:    time.Now().Add(accessTokenLifetime),
		user:         auth.User,
	}, nil
}

// Health fetches the readiness probe.
func (c *Client) Health(ctx context.Context) (HealthResponse, error) {
	var health HealthResponse

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/readyz"), nil)
	if err != nil {
		return health, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return health, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return health, fmt.Errorf("failed to decode response: %w", err)
	}
	return health, nil
}

// AccessToken returns the current access token without refreshing it.
func (s *Session) AccessToken() string { return s.accessToken }

// RefreshToken returns the refresh cookie value.
func (s *Session) RefreshToken() string { return s.refreshToken }

// User returns the sanitized user view from the authenticating response.
func (s *Session) User() UserView { return s.user }

// Refresh mints a new access token from the refresh cookie.
func (s *Session) Refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.client.url("/api/auth/refresh"), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.AddCookie(&http.Cookie{Name: refreshCookieName, Value: s.refreshToken})

	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiErrorFrom(resp)
	}

	var body RefreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	s.accessToken = body.AccessToken
	s.expiresAt = time.Now().Add(accessTokenLifetime)
	return nil
}

// Logout clears the session. The server clears the cookie; the tokens
// themselves stay valid until expiry, so the session discards them.
func (s *Session) Logout(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.client.url("/api/auth/logout"), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if s.refreshToken != "" {
		req.AddCookie(&http.Cookie{Name: refreshCookieName, Value: s.refreshToken})
	}

	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return apiErrorFrom(resp)
	}

	s.accessToken = ""
	s.refreshToken = ""
	s.expiresAt = time.Time{}
	return nil
}

// ListUsers fetches the protected user listing. An empty store yields an
// empty slice, matching the service's "No users found." response.
func (s *Session) ListUsers(ctx context.Context) ([]UserView, error) {
	token, err := s.getValidToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.client.url("/api/users"), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiErrorFrom(resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var users []UserView
	if err := json.Unmarshal(raw, &users); err == nil {
		return users, nil
	}

	// An empty store answers with a message envelope instead of an array.
	var msg MessageResponse
	if err := json.Unmarshal(raw, &msg); err == nil {
		return nil, nil
	}

	return nil, fmt.Errorf("failed to decode response: %s", raw)
}

// getValidToken returns the access token, refreshing it first if it is
// close to expiry.
func (s *Session) getValidToken(ctx context.Context) (string, error) {
	if s.accessToken == "" {
		return "", fmt.Errorf("session is logged out")
	}
	if time.Now().After(s.expiresAt) {
		if err := s.Refresh(ctx); err != nil {
			return "", err
		}
	}
	return s.accessToken, nil
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

func (c *Client) postJSON(ctx context.Context, path string, body any, bearer string) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// refreshTokenFrom extracts the refresh cookie from an auth response.
func refreshTokenFrom(resp *http.Response) string {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == refreshCookieName {
			return cookie.Value
		}
	}
	return ""
}
