package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stylediscover/server/pkg/logger"
)

// CacheConfig holds cache configuration
type CacheConfig struct {
	DefaultTTL      time.Duration // Default cache TTL
	CacheablePaths  []string      // Path prefixes eligible for caching
	CacheableStatus []int         // HTTP status codes to cache
}

// DefaultCacheConfig returns the default cache configuration. Only catalog
// reads are cached; preference and account responses are always per-shopper
// and fresh.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		DefaultTTL:      5 * time.Minute,
		CacheablePaths:  []string{"/api/outfits", "/api/quiz/questions"},
		CacheableStatus: []int{200, 203, 300, 301, 404},
	}
}

// CacheMiddleware implements response caching with Redis
func CacheMiddleware(redisClient *redis.Client, config CacheConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Skip caching if Redis is not available
		if redisClient == nil {
			return c.Next()
		}

		if c.Method() != fiber.MethodGet || !isPathCacheable(c.Path(), config.CacheablePaths) {
			return c.Next()
		}

		// Generate cache key
		cacheKey := generateCacheKey(c)

		// Try to get from cache
		ctx := context.Background()
		cachedResponse, err := redisClient.Get(ctx, cacheKey).Bytes()
		if err == nil && len(cachedResponse) > 0 {
			// Cache hit
			logger.Logger.Debug().
				Str("path", c.Path()).
				Str("cache_key", cacheKey).
				Msg("Cache hit")

			c.Set("X-Cache", "HIT")
			c.Set("Content-Type", "application/json")
			return c.Send(cachedResponse)
		}

		// Cache miss - execute request
		err = c.Next()

		// Check if response should be cached
		statusCode := c.Response().StatusCode()
		if isStatusCacheable(statusCode, config.CacheableStatus) {
			responseBody := c.Response().Body()

			// Cache the response
			ttl := config.DefaultTTL
			if err := redisClient.Set(ctx, cacheKey, responseBody, ttl).Err(); err != nil {
				logger.Logger.Warn().
					Err(err).
					Str("cache_key", cacheKey).
					Msg("Failed to cache response")
			}

			c.Set("X-Cache", "MISS")
		}

		return err
	}
}

// generateCacheKey builds a unique cache key for the request. The shopper id
// is part of the key: quiz-aware browsing returns different results per
// shopper for the same URL. The id comes from the validated token via
// Locals, never from a request header the client controls.
func generateCacheKey(c *fiber.Ctx) string {
	var userID string
	if id, ok := c.Locals("user_id").(uint); ok {
		userID = strconv.FormatUint(uint64(id), 10)
	}

	keyComponents := fmt.Sprintf("%s:%s:%s",
		c.Path(),
		string(c.Request().URI().QueryString()),
		userID,
	)

	hash := sha256.Sum256([]byte(keyComponents))
	return fmt.Sprintf("cache:%s", hex.EncodeToString(hash[:]))
}

// isPathCacheable checks if the request path is eligible for caching
func isPathCacheable(path string, cacheablePaths []string) bool {
	for _, p := range cacheablePaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// isStatusCacheable checks if status code is cacheable
func isStatusCacheable(status int, cacheableStatus []int) bool {
	for _, s := range cacheableStatus {
		if s == status {
			return true
		}
	}
	return false
}

// InvalidateCache invalidates cache entries matching a pattern
func InvalidateCache(redisClient *redis.Client, pattern string) error {
	ctx := context.Background()

	iter := redisClient.Scan(ctx, 0, pattern, 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) > 0 {
		if err := redisClient.Del(ctx, keys...).Err(); err != nil {
			return err
		}

		logger.Logger.Info().
			Int("count", len(keys)).
			Str("pattern", pattern).
			Msg("Cache invalidated")
	}

	return nil
}
