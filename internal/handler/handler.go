// Package handler is the HTTP layer: it parses and validates requests
// with the validation package, calls the service layer, and writes the
// response.
package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vacinabr/vaccination-api/internal/middleware"
	"github.com/vacinabr/vaccination-api/internal/validation"
)

// HandlerFunc is a typed endpoint: it receives a bound, validated
// request and returns the response body or an error. Req is a pointer
// type so Echo's Bind can populate it.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// Handle wraps a typed endpoint into an echo.HandlerFunc.
//
// A fresh request value is allocated per call, then bound, validated,
// and passed to fn. The result is written as JSON with the given
// status; errors propagate to the global error handler. The PReq
// constraint ties the pointer type to its element so the allocation can
// be done here instead of at every call site.
func Handle[Req any, PReq interface {
	*Req
	validation.Validatable
}, Res any](fn HandlerFunc[PReq, Res], status int) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		logger := middleware.GetLogger(c).With().
			Str("operation", "handler").
			Str("method", c.Request().Method).
			Str("route", c.Path()).
			Logger()

		req := PReq(new(Req))
		if err := validation.BindAndValidate(c, req); err != nil {
			logger.Warn().Err(err).Msg("request validation failed")
			return err
		}

		result, err := fn(c, req)
		if err != nil {
			return err
		}

		logger.Info().
			Dur("duration", time.Since(start)).
			Int("status", status).
			Msg("request completed")

		return c.JSON(status, result)
	}
}
