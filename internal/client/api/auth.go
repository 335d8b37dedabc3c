package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/examtrainer/internal/client/models"
)

// Auth groups the authentication endpoints.
type Auth struct {
	c *Client
}

// Register creates a new account.
func (a *Auth) Register(ctx context.Context, req models.RegisterRequest) error {
	return a.c.Do(ctx, http.MethodPost, "/auth/register", req, nil)
}

// Login exchanges credentials for a bearer token.
func (a *Auth) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var resp models.LoginResponse
	if err := a.c.Do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Me resolves the identity behind the current token.
func (a *Auth) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := a.c.Do(ctx, http.MethodGet, "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
