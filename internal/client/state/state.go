// Package state holds the client-side mirrors of server data.
//
// Every asynchronous operation exposes the same observable lifecycle:
// pending sets IsLoading, then exactly one of fulfilled (IsSuccess, payload
// applied) or rejected (IsError, Message) follows. Failures never leave
// partial payloads behind.
package state

import (
	"errors"

	"github.com/dmitrijs2005/dayjournal/internal/client/api"
	"github.com/dmitrijs2005/dayjournal/internal/common"
)

// userMessage picks the text shown to the user for a failed operation:
// the server-provided message verbatim when there is one, the per-operation
// fallback otherwise.
func userMessage(err error, fallback string) string {
	var se *api.ServerError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return fallback
}

// isSessionExpiry reports whether err belongs to the expiry class. Those
// failures are handled globally through the session notifier and must not
// surface as form errors.
func isSessionExpiry(err error) bool {
	return errors.Is(err, common.ErrTokenExpired) || errors.Is(err, common.ErrorUnauthorized)
}
