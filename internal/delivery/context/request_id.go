package context

import (
	"context"
	"log/slog"

	logs "fintwin/internal/infra/log"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for echo.Context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in echo.Context.
	KeyRequestID ContextKey = "request_id"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	val := c.Get(string(KeyRequestID))
	if id, ok := val.(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return logs.WithRequestID(ctx, requestID)
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return logs.WithContext(ctx, logger)
}

// Detached returns the request context without its cancellation. Work started for a
// request runs to completion even when the client goes away; values such as the
// request ID and logger are kept.
func Detached(c echo.Context) context.Context {
	return context.WithoutCancel(c.Request().Context())
}
