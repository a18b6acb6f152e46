package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry inspects a stored bearer token without verifying its signature
// and returns the "exp" claim, if any. The token is opaque to this client by
// contract, so the result is best-effort only: a token that is not a JWT, or
// one without an expiry claim, yields ok == false and must be treated as
// possibly valid. The server remains the authority and rejects stale tokens
// with 401.
func TokenExpiry(tokenString string) (expiry time.Time, ok bool) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	claims, isMap := token.Claims.(jwt.MapClaims)
	if !isMap {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}

// TokenLooksExpired reports whether the stored token carries an expiry claim
// that has already passed. Used at startup to skip a round-trip that would
// certainly fail with 401.
func TokenLooksExpired(tokenString string, now time.Time) bool {
	expiry, ok := TokenExpiry(tokenString)
	return ok && expiry.Before(now)
}
