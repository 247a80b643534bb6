package api

import (
	"context"
	"net/http"

	"realworlded-cli/internal/model"
)

type AuthAPI struct {
	c *Client
}

type SignupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"full_name,omitempty"`
	Password string `json:"password"`
}

func (a *AuthAPI) Signup(ctx context.Context, req SignupRequest) (*model.User, error) {
	var u model.User
	if err := a.c.do(ctx, http.MethodPost, "/auth/signup", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login exchanges credentials for a bearer token. The token is returned, not
// stored: the caller persists it and then fetches the profile with Me.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (string, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := a.c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

func (a *AuthAPI) Me(ctx context.Context) (*model.User, error) {
	var u model.User
	if err := a.c.do(ctx, http.MethodGet, "/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
