// Package ctxutil carries per-request values (caller identity, request id)
// through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	identityKey  ctxKey = "identity"
	requestIDKey ctxKey = "request_id"
)

// Identity describes the caller of a request. The zero value is anonymous.
type Identity struct {
	UserID uuid.UUID
}

// Authenticated reports whether the identity belongs to a known user.
func (i Identity) Authenticated() bool {
	return i.UserID != uuid.Nil
}

// WithIdentity stores the caller identity in the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromCtx returns the caller identity, or the anonymous identity if none is set.
func IdentityFromCtx(ctx context.Context) Identity {
	id, _ := ctx.Value(identityKey).(Identity)
	return id
}

// WithUserID marks the request as made by the given user.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return WithIdentity(ctx, Identity{UserID: userID})
}

// UserIDFromCtx returns the authenticated user ID.
// ok is false for anonymous callers.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id := IdentityFromCtx(ctx)
	return id.UserID, id.Authenticated()
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
