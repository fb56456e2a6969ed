// Package router builds the Echo instance: global middleware, the
// error handler, and the route table.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/vacinabr/vaccination-api/internal/handler"
	"github.com/vacinabr/vaccination-api/internal/middleware"
)

// New assembles the router. Middleware order matters: RequestID must
// run before EnhanceContext so the request-scoped logger carries the
// correlation ID.
func New(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(
		m.Global.Recover(),
		m.Global.Secure(),
		m.Global.CORS(),
		middleware.RequestID(),
		m.ContextEnhancer.EnhanceContext(),
		m.Global.RequestLogger(),
	)

	registerSystemRoutes(e, h)
	registerAPIRoutes(e, h, m)

	return e
}
