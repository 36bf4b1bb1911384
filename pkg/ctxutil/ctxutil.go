// Package ctxutil carries request-scoped identity through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	principalKey struct{}
	requestIDKey struct{}
)

// RoleAdmin is the role value that grants global company scope.
const RoleAdmin = "admin"

// Principal is the authenticated caller as resolved from the access token.
// The account's company, regions and group access are not cached here; they
// are loaded per request so that an admin's change takes effect immediately.
type Principal struct {
	AccountID uuid.UUID
	Role      string
}

// WithPrincipal stores the caller in the context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromCtx returns the caller. ok is false for anonymous requests.
func PrincipalFromCtx(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	if !ok || p.AccountID == uuid.Nil {
		return Principal{}, false
	}
	return p, true
}

// WithAccountID sets the caller's account ID, keeping any role already set.
func WithAccountID(ctx context.Context, id uuid.UUID) context.Context {
	p, _ := ctx.Value(principalKey{}).(Principal)
	p.AccountID = id
	return WithPrincipal(ctx, p)
}

// AccountIDFromCtx extracts the account ID from the context.
// Returns uuid.Nil and false if the value is missing or nil.
func AccountIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	p, ok := PrincipalFromCtx(ctx)
	return p.AccountID, ok
}

// WithRole sets the caller's role, keeping any account ID already set.
func WithRole(ctx context.Context, role string) context.Context {
	p, _ := ctx.Value(principalKey{}).(Principal)
	p.Role = role
	return WithPrincipal(ctx, p)
}

// RoleFromCtx extracts the account role. Returns "" if absent.
func RoleFromCtx(ctx context.Context) string {
	p, _ := ctx.Value(principalKey{}).(Principal)
	return p.Role
}

// IsAdminCtx reports whether the authenticated account is an admin.
func IsAdminCtx(ctx context.Context) bool {
	return RoleFromCtx(ctx) == RoleAdmin
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
