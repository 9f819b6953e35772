package router

import (
	"github.com/labstack/echo/v4"

	"github.com/wicaksn/gostore/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of the
// business API: health, docs UI, and static assets.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	// Health status endpoint, used by load balancers and monitors.
	e.GET("/status", h.Health.CheckHealth)

	// Serves openapi.json, openapi.html and any future docs assets.
	e.Static("/static", "static")

	// Docs UI.
	e.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
