package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/stylediscover/server/pkg/auth"
)

// AuthMiddleware validates JWT tokens
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Identity headers are gateway-owned; inbound values are never trusted
		c.Request().Header.Del("X-User-ID")
		c.Request().Header.Del("X-Username")

		// Get Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header required",
			})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		token := parts[1]

		// Validate token
		claims, err := auth.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		// Store user info in context
		c.Locals("user_id", claims.UserID)
		c.Locals("username", claims.Username)

		// Add user info to headers for backend services
		c.Request().Header.Set("X-User-ID", fmt.Sprintf("%d", claims.UserID))
		c.Request().Header.Set("X-Username", claims.Username)

		return c.Next()
	}
}

// OptionalAuthMiddleware validates the token if present but doesn't require
// it. Browsing stays anonymous without a token; with one, the shopper
// identity is forwarded so quiz-aware filtering can pick up saved
// selections.
func OptionalAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Request().Header.Del("X-User-ID")
		c.Request().Header.Del("X-Username")

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			token := parts[1]
			if claims, err := auth.ValidateToken(token); err == nil {
				c.Locals("user_id", claims.UserID)
				c.Locals("username", claims.Username)
				c.Request().Header.Set("X-User-ID", fmt.Sprintf("%d", claims.UserID))
			}
		}

		return c.Next()
	}
}
