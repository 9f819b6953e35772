package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/wicaksn/gostore/internal/logger"
	"github.com/wicaksn/gostore/internal/server"
)

const (
	// UserIDKey and UserRoleKey are the canonical keys used to store
	// and retrieve user identity from Echo context.
	UserIDKey   = "user_id"
	UserRoleKey = "user_role"

	// LoggerKey is the key for storing the request-scoped logger.
	LoggerKey = "logger"
)

// ContextEnhancer enriches the request context with a request-scoped
// logger carrying request_id, method, path, ip, trace ids (when a New
// Relic transaction exists) and user identity (when auth ran).
//
// The logger is stored both in Echo's context and in the Go request
// context so non-HTTP code (repositories, jobs) can retrieve it.
type ContextEnhancer struct {
	server *server.Server
}

// NewContextEnhancer creates a ContextEnhancer using the app container.
func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns an Echo middleware that builds and stores the
// request-scoped logger.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := GetRequestID(c)

			contextLogger := ce.server.Logger.With().
				Str("request_id", requestID).
				Str("method", c.Request().Method).
				Str("path", c.Path()). // route template (e.g. "/api/orders/:id"), not raw URL
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			if userID := GetUserID(c); userID != "" {
				contextLogger = contextLogger.With().Str("user_id", userID).Logger()
			}

			if userRole, ok := c.Get(UserRoleKey).(string); ok && userRole != "" {
				contextLogger = contextLogger.With().Str("user_role", userRole).Logger()
			}

			c.Set(LoggerKey, &contextLogger)

			// Also store the logger in the Go request context so code
			// that only sees context.Context can fetch it.
			ctx := context.WithValue(c.Request().Context(), loggerCtxKey{}, &contextLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// loggerCtxKey is an unexported context key type so values stored here
// cannot collide with other packages.
type loggerCtxKey struct{}

// GetUserID reads user_id from Echo context; auth middleware sets it.
func GetUserID(c echo.Context) string {
	if userID, ok := c.Get(UserIDKey).(string); ok {
		return userID
	}
	return ""
}

// GetLogger retrieves the request-scoped logger from Echo context.
// If EnhanceContext did not run, it returns a no-op logger so callers
// never crash on nil.
func GetLogger(c echo.Context) *zerolog.Logger {
	if log, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return log
	}

	log := zerolog.Nop()
	return &log
}

// LoggerFromContext retrieves the request-scoped logger from a plain
// context.Context, falling back to a no-op logger.
func LoggerFromContext(ctx context.Context) *zerolog.Logger {
	if log, ok := ctx.Value(loggerCtxKey{}).(*zerolog.Logger); ok {
		return log
	}

	log := zerolog.Nop()
	return &log
}
