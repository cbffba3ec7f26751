// Package metadata stores small string values under fixed keys in the local
// client database.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns ok=false when no row exists for key.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}
