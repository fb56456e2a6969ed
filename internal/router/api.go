package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vacinabr/vaccination-api/internal/handler"
	"github.com/vacinabr/vaccination-api/internal/middleware"
)

// registerAPIRoutes wires the entity and association endpoints. Read
// endpoints carry the per-IP rate limit; writes do not.
func registerAPIRoutes(e *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	limitReads := m.RateLimit.LimitReads()

	e.GET("/countries", handler.Handle(h.Country.List, http.StatusOK), limitReads)
	e.POST("/countries", handler.Handle(h.Country.Create, http.StatusCreated))
	e.PATCH("/countries/:id", handler.Handle(h.Country.Update, http.StatusOK))
	e.DELETE("/countries/:id", handler.Handle(h.Country.Delete, http.StatusOK))

	e.GET("/states", handler.Handle(h.State.List, http.StatusOK), limitReads)
	e.POST("/states", handler.Handle(h.State.Create, http.StatusCreated))
	e.PATCH("/states/:id", handler.Handle(h.State.Update, http.StatusOK))
	e.DELETE("/states/:id", handler.Handle(h.State.Delete, http.StatusOK))

	e.GET("/cities", handler.Handle(h.City.List, http.StatusOK), limitReads)
	e.POST("/cities", handler.Handle(h.City.Create, http.StatusCreated))
	e.PATCH("/cities/:id", handler.Handle(h.City.Update, http.StatusOK))
	e.DELETE("/cities/:id", handler.Handle(h.City.Delete, http.StatusOK))

	// The static segments must be registered on the same subtree as the
	// :id routes; Echo prefers exact matches over params.
	e.GET("/vaccination-points", handler.Handle(h.VaccinationPoint.List, http.StatusOK), limitReads)
	e.POST("/vaccination-points", handler.Handle(h.VaccinationPoint.Create, http.StatusCreated))
	e.PATCH("/vaccination-points/:id", handler.Handle(h.VaccinationPoint.Update, http.StatusOK))
	e.DELETE("/vaccination-points/:id", handler.Handle(h.VaccinationPoint.Delete, http.StatusOK))

	e.GET("/vaccines", handler.Handle(h.Vaccine.List, http.StatusOK), limitReads)
	e.POST("/vaccines", handler.Handle(h.Vaccine.Create, http.StatusCreated))
	e.PATCH("/vaccines/:id", handler.Handle(h.Vaccine.Update, http.StatusOK))
	e.DELETE("/vaccines/:id", handler.Handle(h.Vaccine.Delete, http.StatusOK))

	e.GET("/vaccination-points/vaccines", handler.Handle(h.PointVaccine.VaccinesForPoints, http.StatusOK), limitReads)
	e.GET("/vaccination-points/by-vaccine", handler.Handle(h.PointVaccine.PointsForVaccines, http.StatusOK), limitReads)
	e.POST("/vaccination-points/:id/vaccines", handler.Handle(h.PointVaccine.Link, http.StatusCreated))
	e.DELETE("/vaccination-points/:id/vaccines/:vaccine_id", handler.Handle(h.PointVaccine.Unlink, http.StatusOK))
}
