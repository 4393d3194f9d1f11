package ctxutil

import (
	"context"
	"strings"
)

type ctxKey string

const (
	identityKey  ctxKey = "identity"
	requestIDKey ctxKey = "request_id"
)

// WithIdentity stores the caller's username in the context.
func WithIdentity(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, identityKey, username)
}

// IdentityFromCtx extracts the caller's username from the context.
// Returns "" and false if the value is missing, blank, or of the wrong type;
// callers treat that as an anonymous request.
func IdentityFromCtx(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(identityKey).(string)
	if !ok || strings.TrimSpace(name) == "" {
		return "", false
	}
	return name, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
