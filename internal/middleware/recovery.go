// File: internal/middleware/recovery.go
package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/nupat-tech/nupatai/internal/services"
)

// RecoverPanic converts a handler panic into a JSON 500 instead of
// tearing down the connection.
func RecoverPanic(logger services.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered", "panic", rec, "path", r.URL.Path)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{"detail": "internal server error"})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
