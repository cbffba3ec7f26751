// Package services contains the typed clients for each backend area of the
// agroassist API: auth, chat, market, weather, crop and soil.
//
// Every service is a thin adapter over a shared Requester (normally an
// *api.Executor). Services build paths and query strings, pick the HTTP
// method and decode into the models package; they never retry, cache or
// validate input. Optional parameters are Go zero values meaning "absent".
package services

import "context"

// Requester is the subset of *api.Executor the services depend on.
type Requester interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}
