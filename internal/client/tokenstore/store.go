// Package tokenstore persists the single bearer token of the current user.
//
// Reads never fail: a store that cannot reach its medium reports the token
// as absent and logs the cause.
package tokenstore

import (
	"context"
	"time"
)

// Key is the fixed slot name under which the token is stored.
const Key = "authToken"

type Store interface {
	Get(ctx context.Context) (string, bool)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
	IsPresent(ctx context.Context) bool
}

// Stamped is implemented by stores that remember when the token was written.
type Stamped interface {
	StoredAt(ctx context.Context) (time.Time, bool)
}

// now is a seam for tests.
var now = func() time.Time { return time.Now().UTC() }
