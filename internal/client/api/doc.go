// Package api contains the HTTP request executor shared by every backend
// service client.
//
// The executor joins a path onto the configured base URL, attaches the
// bearer token held by the token store, encodes request bodies as JSON and
// decodes JSON responses. Failures are reported as:
//
//   - ErrNetworkUnreachable (wrapped) when no HTTP response was obtained;
//   - *RequestError, matching ErrRequestFailed, for non-2xx responses.
package api
