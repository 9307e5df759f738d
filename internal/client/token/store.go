// Package token persists the bearer credential between process restarts.
//
// The store is pure storage: expiry inspection lives in jwtx and the API
// client, never here.
package token

import "context"

// Store holds at most one credential.
//
// Contract:
//   - Get returns the stored credential, or an empty string when absent.
//   - Set replaces the credential.
//   - Delete removes it; deleting an absent credential is not an error.
//
// All methods must honor context cancellation/timeouts.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, credential string) error
	Delete(ctx context.Context) error
}
