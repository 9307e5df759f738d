// Package common defines shared constants and sentinel errors used across
// the dayjournal client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrInvalidToken   = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// Server-side resource errors.
	ErrorNotFound = errors.New("not found")

	// Generic flow control.
	ErrorInternal = errors.New("internal error")
)
