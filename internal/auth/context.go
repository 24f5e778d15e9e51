package auth

import (
	"context"
	"errors"
	"net/http"

	"listingcrew/internal/domain"
)

// This package carries the verified caller through a request context.
// Handlers read it once and pass it explicitly to the services.

var ErrNoIdentity = errors.New("no identity in context")

// Identity is the caller as asserted by the auth provider's token.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
	Vendor      bool
}

// Role is derived from the vendor claim.
func (i Identity) Role() domain.Role {
	if i.Vendor {
		return domain.RoleVendor
	}
	return domain.RoleAgent
}

// contextKey is a private type to avoid key collisions in the context.
type contextKey string

const (
	identityKey = contextKey("identity")
	tokenKey    = contextKey("token")
)

// WithIdentity returns a copy of ctx carrying id and the raw bearer token.
// The token is kept so calls to sibling services can forward it.
func WithIdentity(ctx context.Context, id Identity, token string) context.Context {
	ctx = context.WithValue(ctx, identityKey, id)
	return context.WithValue(ctx, tokenKey, token)
}

// SetIdentity is the request flavoured WithIdentity, handy in handler tests.
func SetIdentity(r *http.Request, id Identity) *http.Request {
	return r.WithContext(WithIdentity(r.Context(), id, ""))
}

// FromContext retrieves the caller. Handlers call this to see who is making the request.
func FromContext(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(identityKey).(Identity)
	if !ok || id.UID == "" {
		// middleware missing or misconfigured
		return Identity{}, ErrNoIdentity
	}
	return id, nil
}

// TokenFromContext returns the bearer token the caller presented, if any.
func TokenFromContext(ctx context.Context) string {
	t, _ := ctx.Value(tokenKey).(string)
	return t
}
