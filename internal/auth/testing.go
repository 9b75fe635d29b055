package auth

import "context"

// SetServiceIDForTest injects a service identity into the context for
// testing purposes.
func SetServiceIDForTest(ctx context.Context, serviceID string) context.Context {
	return context.WithValue(ctx, serviceIDKey, serviceID)
}

// SetScopesForTest injects scopes into the context for testing purposes.
func SetScopesForTest(ctx context.Context, scopes []string) context.Context {
	return context.WithValue(ctx, scopesKey, scopes)
}
