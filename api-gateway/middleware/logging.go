package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/trace"

	"github.com/stylediscover/server/pkg/logger"
)

// StructuredLoggingMiddleware provides structured logging for gateway requests
func StructuredLoggingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Get trace ID if available
		traceID := "no-trace"
		if span := trace.SpanFromContext(c.UserContext()); span.SpanContext().IsValid() {
			traceID = span.SpanContext().TraceID().String()
		}

		requestID := c.Get("X-Request-Id")

		// Process request
		err := c.Next()

		duration := time.Since(start)
		statusCode := c.Response().StatusCode()

		logEvent := logger.WithContext(c.UserContext()).Info()
		if statusCode >= 500 {
			logEvent = logger.WithContext(c.UserContext()).Error()
		} else if statusCode >= 400 {
			logEvent = logger.WithContext(c.UserContext()).Warn()
		}

		logEvent.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", statusCode).
			Dur("duration", duration).
			Int("response_size", len(c.Response().Body())).
			Str("trace_id", traceID).
			Str("request_id", requestID).
			Msg("Gateway request completed")

		if err != nil {
			logger.Error(c.UserContext()).
				Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Str("trace_id", traceID).
				Msg("Gateway request error")
		}

		return err
	}
}
