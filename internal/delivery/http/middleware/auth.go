package middleware

import (
	"context"
	"net/http"
	"strings"

	"pokedex/internal/application/auth"
	"pokedex/internal/delivery/http/handler"
)

// Auth middleware validates the Authorization header and rejects the
// request before any handler logic runs.
func Auth(authService auth.Service) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				handler.SendError(w, "Authorization token required", http.StatusUnauthorized)
				return
			}

			userID, err := authService.Authenticate(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				handler.SendError(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), handler.UserIDContextKey, userID)
			next(w, r.WithContext(ctx))
		}
	}
}
