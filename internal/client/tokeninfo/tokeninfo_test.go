package tokeninfo

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return s
}

func TestInspect_ReadsClaimsWithoutKey(t *testing.T) {
	iat := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	exp := iat.Add(24 * time.Hour)
	tok := sign(t, jwt.RegisteredClaims{
		Subject:   "42",
		IssuedAt:  jwt.NewNumericDate(iat),
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	info, err := Inspect(tok)
	require.NoError(t, err)
	assert.Equal(t, "42", info.Subject)
	assert.True(t, iat.Equal(info.IssuedAt))
	assert.True(t, exp.Equal(info.ExpiresAt))

	assert.False(t, info.Expired(iat.Add(time.Hour)))
	assert.Equal(t, 23*time.Hour, info.Remaining(iat.Add(time.Hour)))
	assert.True(t, info.Expired(exp.Add(time.Second)))
	assert.Zero(t, info.Remaining(exp.Add(time.Second)))
}

func TestInspect_NoExpiry(t *testing.T) {
	info, err := Inspect(sign(t, jwt.RegisteredClaims{Subject: "7"}))
	require.NoError(t, err)
	assert.True(t, info.ExpiresAt.IsZero())
	assert.False(t, info.Expired(time.Now()))
	assert.Zero(t, info.Remaining(time.Now()))
}

func TestInspect_OpaqueToken(t *testing.T) {
	_, err := Inspect("not-a-jwt")
	require.ErrorIs(t, err, ErrNotJWT)
}
