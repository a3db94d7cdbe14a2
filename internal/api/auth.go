package api

import (
	"context"
	"net/url"
	"strings"

	"github.com/mentorhub/mentorhub-client/internal/models"
)

// AuthClient issues credential requests against the auth and verification
// endpoints.
type AuthClient struct {
	core *Client
}

// NewAuthClient creates an auth client over the shared request core.
func NewAuthClient(core *Client) *AuthClient {
	return &AuthClient{core: core}
}

// Login exchanges credentials for a bearer token. The server returns the
// raw token as a plain text body.
func (c *AuthClient) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var token string
	if err := c.core.postJSON(ctx, "login", "/auth/login", false, req, &token); err != nil {
		return "", err
	}
	return strings.TrimSpace(token), nil
}

// Register creates an account and returns the server-assigned user id.
func (c *AuthClient) Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error) {
	var resp models.RegisterResponse
	if err := c.core.postJSON(ctx, "register", "/auth/register", false, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteAccount removes the authenticated user's account.
func (c *AuthClient) DeleteAccount(ctx context.Context) error {
	return c.core.delete(ctx, "deleteAccount", "/auth/delete", true)
}

// ResendVerification asks the server to re-send the confirmation email.
// Unauthenticated: the caller has no credential yet.
func (c *AuthClient) ResendVerification(ctx context.Context, email string) error {
	path := "/verification/resend?email=" + url.QueryEscape(email)
	return c.core.postJSON(ctx, "resendVerification", path, false, nil, nil)
}

// ConfirmEmail confirms the account with the emailed token.
func (c *AuthClient) ConfirmEmail(ctx context.Context, token string) error {
	path := "/verification/confirm?token=" + url.QueryEscape(token)
	return c.core.getJSON(ctx, "confirmEmail", path, false, nil)
}
