// File: internal/middleware/constants.go
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/nupat-tech/nupatai/internal/domain"
)

type contextKey string

const (
	// UserKey holds the authenticated *domain.User.
	UserKey contextKey = "user"
	// UserIDKey holds the authenticated user's uuid.UUID.
	UserIDKey contextKey = "user_id"
)

// UserFromContext returns the authenticated user placed by RequireAuth.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	account, ok := ctx.Value(UserKey).(*domain.User)
	return account, ok
}

// UserIDFromContext returns the authenticated user's ID placed by RequireAuth.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return id, ok
}

// UserIDFromRequest is a convenience wrapper for handlers.
func UserIDFromRequest(r *http.Request) (uuid.UUID, bool) {
	return UserIDFromContext(r.Context())
}
