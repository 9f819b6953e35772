// Package middleware contains the HTTP middleware stack: request
// correlation, context-scoped logging, tracing, auth, and the global
// error funnel.
package middleware

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/wicaksn/gostore/internal/server"
)

// Middlewares is a lightweight container that groups all middleware
// components used by the HTTP server.
//
// Build once, reuse everywhere: shared dependencies (*server.Server and
// the New Relic application instance) are wired in here so middleware
// construction is not scattered through routing code.
type Middlewares struct {
	// Global holds common middleware used across the whole API:
	// CORS, request logging, recovery, secure headers, and the global
	// error handler.
	Global *GlobalMiddlewares

	// Auth provides authentication middleware (Clerk-based). The store
	// API is public; Auth is applied only when enabled via config.
	Auth *AuthMiddleware

	// ContextEnhancer enriches each request with a request-scoped logger
	// (request_id, method, path, ip, optional user & trace metadata).
	ContextEnhancer *ContextEnhancer

	// Tracing provides New Relic middleware and helpers to attach custom
	// attributes and notice errors on transactions.
	Tracing *TracingMiddleware

	// RateLimit throttles per-IP request rates on the API groups and
	// reports rejections as New Relic custom events.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components using the
// application container.
//
// When New Relic is not configured nrApp is nil and the tracing
// middleware degrades into a no-op.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Auth:            NewAuthMiddleware(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
