package router

import (
	"github.com/labstack/echo/v4"

	"github.com/vacinabr/vaccination-api/internal/handler"
)

// registerSystemRoutes wires the non-business endpoints: health, docs
// UI, and the static folder backing it.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	e.GET("/", h.Health.Root)
	e.GET("/status", h.Health.CheckHealth)
	e.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
	e.Static("/static", "static")
}
