package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/stylediscover/server/api-gateway/config"
	"github.com/stylediscover/server/api-gateway/middleware"
	"github.com/stylediscover/server/api-gateway/proxy"
	"github.com/stylediscover/server/pkg/logger"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix       string
	ServiceName  string
	Description  string
	RequireAuth  bool // Requires authentication
	OptionalAuth bool // Forwards identity when a token is present
}

// Routes holds all route definitions
var Routes = []RouteDefinition{
	// Public routes (no auth required)
	{
		Prefix:      "/auth",
		ServiceName: "user",
		Description: "Authentication endpoints (login, register)",
	},

	// Catalog browsing is public; identity is forwarded when present so
	// quiz-aware filtering can use saved selections
	{
		Prefix:       "/api/outfits",
		ServiceName:  "discovery",
		Description:  "Outfit catalog browsing, feed and stats",
		OptionalAuth: true,
	},
	{
		Prefix:      "/api/quiz/questions",
		ServiceName: "discovery",
		Description: "Style quiz questions",
	},

	// Shopper routes (auth required)
	{
		Prefix:      "/users",
		ServiceName: "user",
		Description: "Shopper profile",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/preferences",
		ServiceName: "discovery",
		Description: "Favorites, cart and quiz selections",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/favorites",
		ServiceName: "discovery",
		Description: "Favorite toggling",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/cart",
		ServiceName: "discovery",
		Description: "Cart mutations",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/quiz/submit",
		ServiceName: "discovery",
		Description: "Style quiz submission",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/quiz/selections",
		ServiceName: "discovery",
		Description: "Direct quiz selection updates",
		RequireAuth: true,
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig, redisClient *redis.Client) {
	// Create reverse proxy
	reverseProxy := proxy.NewReverseProxy(cfg)

	// Response caching runs inside each route group, after the auth
	// middleware has resolved the shopper identity. Registering it
	// globally would key quiz-aware responses before identity is known.
	var cacheHandler fiber.Handler
	if redisClient != nil {
		cacheConfig := middleware.DefaultCacheConfig()
		cacheHandler = middleware.CacheMiddleware(redisClient, cacheConfig)
		logger.Logger.Info().
			Dur("ttl", cacheConfig.DefaultTTL).
			Msg("Response caching enabled (catalog reads only)")
	}

	// Gateway quick health check (no downstream checks)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "api-gateway",
		})
	})

	// Liveness probe (for Kubernetes)
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks downstream services)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		services := checkServices(ctx, cfg)
		status := fiber.StatusOK
		for _, healthy := range services {
			if !healthy {
				status = fiber.StatusServiceUnavailable
				break
			}
		}

		return c.Status(status).JSON(fiber.Map{
			"services": services,
		})
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "StyleDiscover API Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	// Register all service routes
	for _, route := range Routes {
		registerServiceRoutes(app, route, reverseProxy, cacheHandler)
	}
}

// checkServices pings each backend health endpoint
func checkServices(ctx context.Context, cfg *config.GatewayConfig) map[string]bool {
	client := &http.Client{Timeout: 2 * time.Second}
	results := make(map[string]bool, len(cfg.Services))

	for name, svc := range cfg.Services {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, svc.BaseURL+svc.HealthCheck, nil)
		if err != nil {
			results[name] = false
			continue
		}
		resp, err := client.Do(req)
		if err != nil {
			results[name] = false
			continue
		}
		resp.Body.Close()
		results[name] = resp.StatusCode == http.StatusOK
	}

	return results
}

// registerServiceRoutes registers all HTTP methods for a service prefix
func registerServiceRoutes(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy, cacheHandler fiber.Handler) {
	// Create handler function
	handler := func(c *fiber.Ctx) error {
		return proxyHandler.ProxyRequest(c, route.ServiceName)
	}

	// Apply middleware based on route requirements
	var middlewares []fiber.Handler

	if route.RequireAuth {
		middlewares = append(middlewares, middleware.AuthMiddleware())
	} else if route.OptionalAuth {
		middlewares = append(middlewares, middleware.OptionalAuthMiddleware())
	}
	// Public routes have no auth middleware

	// Cache after auth so the key sees the resolved identity
	if cacheHandler != nil {
		middlewares = append(middlewares, cacheHandler)
	}

	// Create a route group for this service
	group := app.Group(route.Prefix, middlewares...)

	// Handle all HTTP methods with wildcard path
	group.All("/*", handler)

	// Also handle the exact prefix path (without /*)
	if len(middlewares) > 0 {
		app.All(route.Prefix, append(middlewares, handler)...)
	} else {
		app.All(route.Prefix, handler)
	}
}
