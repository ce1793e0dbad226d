package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
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
// in the request context. Preference mutations and quiz submission are
// gated on it; catalog browsing stays public.
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logger.Logger.Warn().Msg("Missing authorization header")
			respondError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			logger.Logger.Warn().Msg("Invalid authorization header format")
			respondError(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Invalid token")
			respondError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UsernameKey, claims.Username)

		// Forwarded for handlers that read identity from headers
		r.Header.Set("X-User-ID", strconv.FormatUint(uint64(claims.UserID), 10))

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

// Helper function for error responses
func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{
		Success: false,
		Error:   message,
	})
}
