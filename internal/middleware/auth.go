// File: internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nupat-tech/nupatai/internal/domain"
)

// UserResolver validates a bearer token and loads the matching account.
type UserResolver interface {
	ResolveUser(ctx context.Context, token string) (*domain.User, error)
}

// RequireAuth guards a subrouter: every request must carry a valid
// "Authorization: Bearer <token>" header or it is rejected with 401
// before reaching the handler.
func RequireAuth(resolver UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeUnauthorized(w, "missing or malformed authorization header")
				return
			}

			account, err := resolver.ResolveUser(r.Context(), token)
			if err != nil {
				writeUnauthorized(w, "could not validate credentials")
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, account)
			ctx = context.WithValue(ctx, UserIDKey, account.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func writeUnauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
