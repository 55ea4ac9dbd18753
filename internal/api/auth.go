package api

import (
	"context"
	"time"

	"github.com/aslanbek/kazlearn/internal/auth"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates against the backend and persists the issued
// token.
func (c *Client) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	var tok TokenResponse
	err := c.post(ctx, "/auth/login", nil, loginRequest{Username: username, Password: password}, &tok)
	if err != nil {
		return nil, err
	}

	if c.tokens != nil {
		stored := auth.Token{
			AccessToken: tok.AccessToken,
			TokenType:   tok.TokenType,
			UserRole:    tok.UserRole,
			SavedAt:     time.Now(),
		}
		if tok.UserLanguage != nil {
			stored.UserLanguage = *tok.UserLanguage
		}
		if err := c.tokens.Save(stored); err != nil {
			return nil, err
		}
	}
	return &tok, nil
}

// Me returns the authenticated account.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var u User
	if err := c.get(ctx, "/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
