package clients

import (
	"context"

	"github.com/google/uuid"
)

// HeaderRequestID is the header carrying the per-run request ID.
const HeaderRequestID = "X-Request-ID"

type requestIDKey struct{}

// NewRequestID generates a fresh request ID.
func NewRequestID() string {
	return uuid.New().String()
}

// ContextWithRequestID stores a request ID in the context.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request ID stored in ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}

	return ""
}
