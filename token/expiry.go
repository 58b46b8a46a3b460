// Package token inspects returned access tokens. Some servers omit
// expires_in from the token response and leave the expiration to the JWT's
// exp claim; ExpiryHint recovers it for such callers.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiryHint reads the exp claim of a JWT access token without verifying the
// signature. The result is a scheduling hint only, never an authorization
// decision: the token is not validated. Returns false when the token is not
// a JWT or carries no exp claim.
func ExpiryHint(accessToken string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return time.Time{}, false
	}
	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return time.Time{}, false
	}
	return expiry.Time, true
}
