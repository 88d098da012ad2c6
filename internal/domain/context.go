package domain

import "context"

// contextKey is a private type for context keys to avoid collisions.
type contextKey string

const (
	userContextKey   contextKey = "admin_user"
	tenantContextKey contextKey = "tenant"
)

// WithUser returns a context carrying the authenticated admin user.
func WithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, userContextKey, u)
}

// GetUserFromContext returns the authenticated admin user, or nil.
func GetUserFromContext(ctx context.Context) *User {
	u, _ := ctx.Value(userContextKey).(*User)
	return u
}

// WithTenant returns a context carrying the request's tenant key.
func WithTenant(ctx context.Context, t Tenant) context.Context {
	return context.WithValue(ctx, tenantContextKey, t)
}

// GetTenantFromContext returns the request's tenant key, or "".
func GetTenantFromContext(ctx context.Context) Tenant {
	t, _ := ctx.Value(tenantContextKey).(Tenant)
	return t
}
