// Package logging is the single logging seam of the client and the sandbox.
// Records are structured: args after msg are slog key/value pairs.
package logging

import "context"

// ComponentKey tags every record a component logs.
const ComponentKey = "component"

// Logger is satisfied by SlogLogger and by test doubles.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child that adds args to every record.
	With(args ...any) Logger
}

// Named returns l tagged with the component that owns it, e.g. "auth",
// "feed" or "http".
func Named(l Logger, component string) Logger {
	return l.With(ComponentKey, component)
}
