package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/stylediscover/server/pkg/auth"
	"github.com/stylediscover/server/pkg/logger"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
)

// AuthMiddleware validates the bearer JWT and stores the shopper identity
// in the request context.
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondJSON(w, http.StatusUnauthorized, Response{
				Success: false,
				Error:   "Authorization header required",
			})
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondJSON(w, http.StatusUnauthorized, Response{
				Success: false,
				Error:   "Invalid authorization header format",
			})
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Invalid token")
			respondJSON(w, http.StatusUnauthorized, Response{
				Success: false,
				Error:   "Invalid token",
			})
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UsernameKey, claims.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// userIDFromContext returns the authenticated shopper id, or zero.
func userIDFromContext(ctx context.Context) uint {
	if id, ok := ctx.Value(UserIDKey).(uint); ok {
		return id
	}
	return 0
}
