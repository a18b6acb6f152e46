package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func TestTokenExpiry(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)

	expiry, ok := TokenExpiry(signedToken(t, jwt.MapClaims{"exp": expiresAt.Unix()}))
	require.True(t, ok)
	assert.True(t, expiry.Equal(expiresAt))
}

func TestTokenExpiry_NoClaim(t *testing.T) {
	_, ok := TokenExpiry(signedToken(t, jwt.MapClaims{"sub": "42"}))
	assert.False(t, ok)
}

func TestTokenExpiry_OpaqueToken(t *testing.T) {
	_, ok := TokenExpiry("not-a-jwt-at-all")
	assert.False(t, ok)
}

func TestTokenLooksExpired(t *testing.T) {
	now := time.Now()

	expired := signedToken(t, jwt.MapClaims{"exp": now.Add(-time.Minute).Unix()})
	fresh := signedToken(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()})

	assert.True(t, TokenLooksExpired(expired, now))
	assert.False(t, TokenLooksExpired(fresh, now))
	assert.False(t, TokenLooksExpired("opaque-token", now), "токен без exp считается живым")
}
