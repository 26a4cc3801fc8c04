// Package requestcontext carries request-scoped values without depending
// on net/http, so the engines can read them whether a call came in over
// HTTP or from the task worker.
package requestcontext

import "context"

type requestIDKey struct{}

// RequestID retrieves the correlation id from the context. For HTTP calls
// this is set by middleware; for tasks the worker sets the task id.
// Returns "" when unset.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// WithRequestID injects a correlation id into the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}
