// ABOUTME: Account and token operations against the backend auth endpoints
// ABOUTME: Register, login (password grant), refresh, and local logout

package api

import (
	"context"
	"log/slog"

	"github.com/doctalk/doctalk-cli/models"
)

// Register creates an account. Validation failures (duplicate username,
// malformed email) come back as *Error with field messages.
func (c *Client) Register(ctx context.Context, req *models.RegisterRequest) error {
	return c.doJSON(ctx, "POST", "/register/", req, nil)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token pair and attaches the access token
// to future requests. Persisting the pair is the session store's job.
func (c *Client) Login(ctx context.Context, username, password string) (models.TokenPair, error) {
	var pair models.TokenPair
	err := c.doJSON(ctx, "POST", "/token/", loginRequest{Username: username, Password: password}, &pair)
	if err != nil {
		return models.TokenPair{}, err
	}
	c.SetToken(pair.Access)
	slog.Debug("Access token attached", "username", username)
	return pair, nil
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshToken exchanges a refresh token for a fresh pair and attaches the
// new access token. The backend may rotate or omit the refresh token; the
// previous one is kept when the response leaves it empty.
func (c *Client) RefreshToken(ctx context.Context, refresh string) (models.TokenPair, error) {
	var pair models.TokenPair
	err := c.doJSON(ctx, "POST", "/token/refresh/", refreshRequest{Refresh: refresh}, &pair)
	if err != nil {
		return models.TokenPair{}, err
	}
	if pair.Refresh == "" {
		pair.Refresh = refresh
	}
	c.SetToken(pair.Access)
	return pair, nil
}

// Logout clears the attached credential. Local only; the backend keeps no
// session state for this client.
func (c *Client) Logout() {
	c.ClearToken()
}
