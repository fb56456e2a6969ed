package middleware

import (
	"github.com/vacinabr/vaccination-api/internal/server"
)

// Middlewares groups the middleware components used by the router so
// shared dependencies are wired in one place.
type Middlewares struct {
	// Global holds middleware applied to every route plus the global
	// error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer attaches the request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// RateLimit throttles the read endpoints.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components from the
// application container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
