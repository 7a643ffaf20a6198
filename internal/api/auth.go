package api

import (
	"context"
	"net/http"
)

// AuthStatus reports whether the backend holds a valid broker session.
type AuthStatus struct {
	Authenticated    bool `json:"authenticated"`
	APIKeyConfigured bool `json:"api_key_configured"`
}

// GetAuthStatus checks the backend's authentication state.
func (c *Client) GetAuthStatus(ctx context.Context) (AuthStatus, error) {
	var status AuthStatus
	if err := c.call(ctx, http.MethodGet, "/api/auth/status", nil, nil, &status); err != nil {
		return AuthStatus{}, err
	}
	return status, nil
}

// GetLoginURL returns the broker login URL the user must visit to start a
// new session.
func (c *Client) GetLoginURL(ctx context.Context) (string, error) {
	var resp struct {
		LoginURL string `json:"login_url"`
	}
	if err := c.call(ctx, http.MethodGet, "/api/auth/login-url", nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.LoginURL, nil
}

// Logout clears the backend's broker session.
func (c *Client) Logout(ctx context.Context) error {
	return c.call(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil)
}

// Health is the backend's liveness summary.
type Health struct {
	Status            string `json:"status"`
	Authenticated     bool   `json:"authenticated"`
	ActiveConnections int    `json:"active_connections"`
	WatchlistsCount   int    `json:"watchlists_count"`
}

// GetHealth fetches the backend health summary.
func (c *Client) GetHealth(ctx context.Context) (Health, error) {
	var h Health
	if err := c.call(ctx, http.MethodGet, "/api/health", nil, nil, &h); err != nil {
		return Health{}, err
	}
	return h, nil
}
