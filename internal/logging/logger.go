// Package logging is the structured logger the client packages log through.
// SlogLogger, backed by log/slog, is the only implementation.
package logging

import "context"

// Logger takes a message plus alternating key/value args:
//
//	logger.Debug(ctx, "request ok", "method", "GET", "path", "/crops", "status", 200)
//
// The executor logs each call at Debug or Error, token stores log medium
// failures at Warn, and the session logs state transitions at Info.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a logger that adds args to every record.
	With(args ...any) Logger
}
