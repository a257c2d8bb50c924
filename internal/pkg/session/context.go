package session

import "context"

type contextKey struct{}

// SetAuth stores the authenticated identity in the context.
func SetAuth(ctx context.Context, auth *Auth) context.Context {
	return context.WithValue(ctx, contextKey{}, auth)
}

// GetAuth returns the authenticated identity from the context, or nil.
func GetAuth(ctx context.Context) *Auth {
	auth, ok := ctx.Value(contextKey{}).(*Auth)
	if !ok {
		return nil
	}
	return auth
}
