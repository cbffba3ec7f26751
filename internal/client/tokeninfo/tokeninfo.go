// Package tokeninfo reads the claims of a bearer token for display.
//
// The signature is NOT verified: the client holds no key, and the result
// must never be used for an authorization decision. The backend remains
// the only authority on token validity.
package tokeninfo

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNotJWT = errors.New("token is not a JWT")

type Info struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry that is before now.
func (i Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// Remaining is the time left until expiry, zero when expired or unknown.
func (i Info) Remaining(now time.Time) time.Duration {
	if i.ExpiresAt.IsZero() || !now.Before(i.ExpiresAt) {
		return 0
	}
	return i.ExpiresAt.Sub(now)
}

func Inspect(token string) (Info, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrNotJWT, err)
	}

	var info Info
	info.Subject = claims.Subject
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}
