// Package services contains application services for the dayjournal client.
// This file defines the authentication service: register, login, logout and
// the local credential-expiry check.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/dayjournal/internal/client/api"
	"github.com/dmitrijs2005/dayjournal/internal/client/jwtx"
	"github.com/dmitrijs2005/dayjournal/internal/client/models"
	"github.com/dmitrijs2005/dayjournal/internal/client/token"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register, Login: authenticate against the server and persist the
//     returned credential in the token store.
//   - Logout: drop the stored credential. Local sign-out is authoritative;
//     it succeeds even when storage cleanup fails.
//   - CheckTokenExpiry: inspect the stored credential's exp claim and drop
//     the credential when it is already expired.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, email, username, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Logout(ctx context.Context) error
	CheckTokenExpiry(ctx context.Context) (bool, error)
}

// authService is the concrete AuthService backed by the REST client and the
// local token store.
type authService struct {
	client api.Client
	tokens token.Store

	// now is a test seam for expiry checks.
	now func() time.Time
}

// NewAuthService constructs an AuthService bound to the given API client and
// token store.
func NewAuthService(client api.Client, tokens token.Store) AuthService {
	return &authService{client: client, tokens: tokens, now: time.Now}
}

// Register creates a new account and stores the returned credential. The
// backend echoes only the new id, so identity fields come from the form.
func (a *authService) Register(ctx context.Context, email, username, password string) (*models.User, string, error) {
	resp, err := a.client.Register(ctx, api.RegisterRequest{Email: email, Username: username, Password: password})
	if err != nil {
		return nil, "", fmt.Errorf("registration error: %w", err)
	}

	if err := a.tokens.Set(ctx, resp.Token); err != nil {
		return nil, "", fmt.Errorf("credential saving error: %w", err)
	}

	user := &models.User{ID: resp.ID, Email: email, Username: username}
	return user, resp.Token, nil
}

// Login authenticates and stores the returned credential.
func (a *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	resp, err := a.client.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, "", fmt.Errorf("login error: %w", err)
	}

	if err := a.tokens.Set(ctx, resp.Token); err != nil {
		return nil, "", fmt.Errorf("credential saving error: %w", err)
	}

	username := resp.Username
	if username == "" {
		// The login response carries no username; the profile call fills
		// it in later.
		username = "User"
	}

	user := &models.User{ID: resp.ID, Email: email, Username: username}
	return user, resp.Token, nil
}

// Logout deletes the stored credential.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.tokens.Delete(ctx); err != nil {
		return fmt.Errorf("credential cleanup error: %w", err)
	}
	return nil
}

// CheckTokenExpiry reports whether the stored credential has expired.
// An absent credential is not expiry. An expired (or undecodable)
// credential is deleted before returning true.
func (a *authService) CheckTokenExpiry(ctx context.Context) (bool, error) {
	tok, err := a.tokens.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("credential read error: %w", err)
	}
	if tok == "" {
		return false, nil
	}

	if jwtx.Expired(tok, a.now()) {
		if err := a.tokens.Delete(ctx); err != nil {
			return true, fmt.Errorf("credential cleanup error: %w", err)
		}
		return true, nil
	}
	return false, nil
}
