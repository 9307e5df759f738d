// Package api implements the REST transport to the journal backend.
//
// All outbound calls go through a single pipeline that attaches the stored
// bearer credential, refuses to send requests whose credential is already
// expired, and converts 401 responses into a session-expiry notification.
package api

import (
	"context"

	"github.com/dmitrijs2005/dayjournal/internal/client/models"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the backend's answer to both auth calls. The token is a
// JWT carrying an exp claim; the client never verifies its signature.
type AuthResponse struct {
	Token    string `json:"token"`
	ID       int64  `json:"id"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
}

// ProfileUpdate is the body of PUT /user/profile.
type ProfileUpdate struct {
	Username string `json:"username"`
}

// Client defines the backend operations the rest of the client consumes.
//
// Errors: implementations return common.ErrTokenExpired when a locally
// expired credential blocks the call, common.ErrorUnauthorized on 401,
// common.ErrUnavailable on network/timeout failures, and *ServerError for
// other non-2xx responses. Callers match with errors.Is/errors.As.
type Client interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)

	ListEntries(ctx context.Context) ([]models.Entry, error)
	CreateEntry(ctx context.Context, draft models.EntryDraft) (*models.Entry, error)
	UpdateEntry(ctx context.Context, id int64, patch models.EntryPatch) (*models.Entry, error)
	DeleteEntry(ctx context.Context, id int64) error

	GetProfile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, upd ProfileUpdate) error

	Frequency(ctx context.Context) ([]models.FrequencyBucket, error)
	Categories(ctx context.Context) ([]models.CategoryCount, error)
	WordCount(ctx context.Context) (*models.WordCount, error)
}
