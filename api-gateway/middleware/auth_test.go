package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func identityEchoApp(authHandler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/api/outfits", authHandler, func(c *fiber.Ctx) error {
		return c.SendString(c.Get("X-User-ID"))
	})
	return app
}

func TestOptionalAuthStripsInboundIdentityHeader(t *testing.T) {
	app := identityEchoApp(OptionalAuthMiddleware())

	req := httptest.NewRequest(fiber.MethodGet, "/api/outfits", nil)
	req.Header.Set("X-User-ID", "42")
	req.Header.Set("X-Username", "mallory")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("got status %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(body) != "" {
		t.Fatalf("inbound identity header reached the backend: %q", body)
	}
}

func TestAuthRejectsSpoofedIdentityWithoutToken(t *testing.T) {
	app := identityEchoApp(AuthMiddleware())

	req := httptest.NewRequest(fiber.MethodGet, "/api/outfits", nil)
	req.Header.Set("X-User-ID", "42")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("got status %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}
