package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const (
	serviceIDKey contextKey = "service_id"
	scopesKey    contextKey = "scopes"
)

// Middleware returns an HTTP middleware that validates JWT tokens.
// Extracts the token from the Authorization header (Bearer scheme)
// and stores the calling service's identity and scopes in the request
// context.
func Middleware(jwtMgr *JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				http.Error(w, `{"error":"missing authorization header"}`, http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				http.Error(w, `{"error":"invalid authorization format"}`, http.StatusUnauthorized)
				return
			}

			claims, err := jwtMgr.ValidateToken(parts[1])
			if err != nil {
				http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), serviceIDKey, claims.ServiceID)
			ctx = context.WithValue(ctx, scopesKey, claims.Scopes)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireScope returns a middleware that 403s any request whose context
// doesn't carry scope. It must sit downstream of Middleware, which is what
// populates the context it reads.
func RequireScope(scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !hasScope(ScopesFromContext(r.Context()), scope) {
				http.Error(w, `{"error":"token lacks required scope"}`, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func hasScope(scopes []string, want string) bool {
	for _, s := range scopes {
		if s == want {
			return true
		}
	}
	return false
}

// ServiceIDFromContext extracts the authenticated service identity from the
// request context.
func ServiceIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(serviceIDKey).(string)
	return id
}

// ScopesFromContext extracts the authenticated caller's scopes from the
// request context.
func ScopesFromContext(ctx context.Context) []string {
	scopes, _ := ctx.Value(scopesKey).([]string)
	return scopes
}
