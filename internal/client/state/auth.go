package state

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/dayjournal/internal/client/models"
	"github.com/dmitrijs2005/dayjournal/internal/client/services"
)

// AuthState is a snapshot of the authentication store.
//
// Invariant: SessionExpired implies User == nil and Token == "".
type AuthState struct {
	User  *models.User
	Token string

	IsLoading      bool
	IsSuccess      bool
	IsError        bool
	Message        string
	SessionExpired bool
}

// AuthStore owns the current identity and the request-lifecycle flags for
// the auth operations. It also owns the session epoch: a counter bumped on
// every identity change, used to discard responses that were issued under
// a session that no longer exists.
type AuthStore struct {
	mu    sync.Mutex
	svc   services.AuthService
	state AuthState
	epoch uint64
}

func NewAuthStore(svc services.AuthService) *AuthStore {
	return &AuthStore{svc: svc}
}

// State returns a copy of the current state.
func (s *AuthStore) State() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Epoch returns the current session epoch.
func (s *AuthStore) Epoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch
}

func (s *AuthStore) pending() {
	s.mu.Lock()
	s.state.IsLoading = true
	s.mu.Unlock()
}

// rejected applies the failure to state. Expiry-class errors are not form
// errors: the session notifier already handled them, so only the loading
// flag is dropped.
func (s *AuthStore) rejected(err error, fallback string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLoading = false
	if isSessionExpiry(err) {
		return
	}
	s.state.IsError = true
	s.state.Message = userMessage(err, fallback)
	s.state.User = nil
	s.state.Token = ""
}

func (s *AuthStore) fulfilledIdentity(user *models.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLoading = false
	s.state.IsSuccess = true
	s.state.User = user
	s.state.Token = token
	s.epoch++
}

// Register creates an account and signs the user in.
func (s *AuthStore) Register(ctx context.Context, email, username, password string) error {
	s.pending()
	user, tok, err := s.svc.Register(ctx, email, username, password)
	if err != nil {
		s.rejected(err, "Registration failed")
		return err
	}
	s.fulfilledIdentity(user, tok)
	return nil
}

// Login authenticates the user.
func (s *AuthStore) Login(ctx context.Context, email, password string) error {
	s.pending()
	user, tok, err := s.svc.Login(ctx, email, password)
	if err != nil {
		s.rejected(err, "Login failed")
		return err
	}
	s.fulfilledIdentity(user, tok)
	return nil
}

// Logout signs the user out. The local state transition cannot fail: the
// identity is cleared even when credential cleanup reports an error, which
// is only returned for logging.
func (s *AuthStore) Logout(ctx context.Context) error {
	err := s.svc.Logout(ctx)

	s.mu.Lock()
	s.state.User = nil
	s.state.Token = ""
	s.state.IsLoading = false
	s.state.IsSuccess = false
	s.state.IsError = false
	s.state.Message = ""
	s.epoch++
	s.mu.Unlock()

	return err
}

// CheckTokenExpiry inspects the stored credential and flips the
// session-expired flag when it is already past its exp claim. An absent
// credential leaves the state unchanged.
func (s *AuthStore) CheckTokenExpiry(ctx context.Context) error {
	expired, err := s.svc.CheckTokenExpiry(ctx)
	if err != nil {
		return err
	}
	if expired {
		s.expire("Token expired")
	}
	return nil
}

// HandleSessionExpired is the notifier callback: it marks the session
// expired and clears the identity. Safe to call from within an in-flight
// operation.
func (s *AuthStore) HandleSessionExpired() {
	s.expire("Session expired")
}

func (s *AuthStore) expire(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SessionExpired = true
	s.state.User = nil
	s.state.Token = ""
	s.state.Message = message
	s.epoch++
}

// Reset clears the transient flags after a screen has consumed them.
// Identity is untouched.
func (s *AuthStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLoading = false
	s.state.IsSuccess = false
	s.state.IsError = false
	s.state.Message = ""
	s.state.SessionExpired = false
}
