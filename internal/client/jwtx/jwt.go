// Package jwtx inspects bearer tokens on the client side.
//
// The client only ever reads the expiry claim, to avoid sending requests
// that are doomed to fail. It never verifies signatures: the token is not
// a trust boundary here, verification is the backend's responsibility.
package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/dayjournal/internal/common"
)

// ExpiresAt decodes the payload segment of token and returns its exp claim.
// Returns common.ErrInvalidToken if the token cannot be decoded or carries
// no expiry.
func ExpiresAt(token string) (time.Time, error) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, common.ErrInvalidToken
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, common.ErrInvalidToken
	}
	return exp.Time, nil
}

// Expired reports whether token's exp claim is at or before now.
// A malformed token counts as expired: the stored credential is unusable
// either way and the caller should discard it.
func Expired(token string, now time.Time) bool {
	exp, err := ExpiresAt(token)
	if err != nil {
		return true
	}
	return !exp.After(now)
}
