// Package logging defines the structured-logging interface used across the
// SDK and its slog-backed implementation.
//
// The SDK never configures logging on its own: nothing happens at import
// time, and packages that want to log receive a Logger explicitly. A host
// application (or the CLI) calls Init once at startup; everything else
// defaults to a no-op logger.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key–value pairs, e.g.:
//
//	log.Info(ctx, "opening channel", "url", url)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value
	// pairs.
	With(args ...any) Logger
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) Logger                  { return n }

// Nop returns a logger that discards everything. It is the default wherever
// no logger was injected.
func Nop() Logger { return nopLogger{} }
