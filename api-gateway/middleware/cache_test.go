package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// keyEchoApp serves the computed cache key so tests can observe how a
// request would be keyed. The identity middleware mirrors the auth layer:
// it stores the resolved shopper id in Locals before the key is built.
func keyEchoApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Get("/api/outfits", func(c *fiber.Ctx) error {
		if userID != 0 {
			c.Locals("user_id", userID)
		}
		return c.SendString(generateCacheKey(c))
	})
	return app
}

func fetchKey(t *testing.T, app *fiber.App, spoofedUserID string) string {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/api/outfits?quiz=1", nil)
	if spoofedUserID != "" {
		req.Header.Set("X-User-ID", spoofedUserID)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(body)
}

func TestCacheKeyVariesByResolvedIdentity(t *testing.T) {
	anonymous := fetchKey(t, keyEchoApp(0), "")
	shopperOne := fetchKey(t, keyEchoApp(1), "")
	shopperTwo := fetchKey(t, keyEchoApp(2), "")

	if shopperOne == shopperTwo {
		t.Fatalf("different shoppers share a cache key: %s", shopperOne)
	}
	if anonymous == shopperOne {
		t.Fatalf("anonymous request shares a cache key with shopper 1: %s", anonymous)
	}
}

func TestCacheKeyIgnoresClientSuppliedIdentityHeader(t *testing.T) {
	// A spoofed X-User-ID must not move the request into another
	// shopper's cache slot; only the token-derived identity counts.
	anonymous := fetchKey(t, keyEchoApp(0), "")
	spoofed := fetchKey(t, keyEchoApp(0), "1")
	if anonymous != spoofed {
		t.Fatalf("client header changed the cache key: %s vs %s", anonymous, spoofed)
	}

	authenticated := fetchKey(t, keyEchoApp(1), "2")
	if authenticated != fetchKey(t, keyEchoApp(1), "") {
		t.Fatalf("client header changed an authenticated cache key")
	}
}
