package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/vacinabr/vaccination-api/internal/model"
	"github.com/vacinabr/vaccination-api/internal/server"
	"github.com/vacinabr/vaccination-api/internal/service"
	"github.com/vacinabr/vaccination-api/internal/validation"
)

// PointVaccineHandler serves the vaccination point ↔ vaccine
// association endpoints.
type PointVaccineHandler struct {
	Handler
	links *service.PointVaccineService
}

// NewPointVaccineHandler constructs the handler.
func NewPointVaccineHandler(s *server.Server, links *service.PointVaccineService) *PointVaccineHandler {
	return &PointVaccineHandler{
		Handler: NewHandler(s),
		links:   links,
	}
}

// LinkVaccineRequest names the pair to link: the point from the path,
// the vaccine from the body.
type LinkVaccineRequest struct {
	VaccinationPointID int64 `param:"id" json:"-"`
	VaccineID          int64 `json:"vaccine_id" validate:"required,gt=0"`
}

func (r *LinkVaccineRequest) Validate() error {
	return validation.Struct(r)
}

// UnlinkVaccineRequest names the pair to unlink, both from the path.
type UnlinkVaccineRequest struct {
	VaccinationPointID int64 `param:"id" json:"-"`
	VaccineID          int64 `param:"vaccine_id" json:"-"`
}

func (r *UnlinkVaccineRequest) Validate() error {
	return nil
}

// ListPointVaccinesRequest optionally narrows the by-point view to one
// vaccination point.
type ListPointVaccinesRequest struct {
	VaccinationPointID *int64 `query:"vaccination_point_id" json:"-"`
}

func (r *ListPointVaccinesRequest) Validate() error {
	return nil
}

// ListVaccinePointsRequest optionally narrows the by-vaccine view to
// one vaccine.
type ListVaccinePointsRequest struct {
	VaccineID *int64 `query:"vaccine_id" json:"-"`
}

func (r *ListVaccinePointsRequest) Validate() error {
	return nil
}

// Link handles POST /vaccination-points/:id/vaccines.
func (h *PointVaccineHandler) Link(c echo.Context, req *LinkVaccineRequest) (*service.CreateResult, error) {
	return h.links.Link(c.Request().Context(), req.VaccinationPointID, req.VaccineID)
}

// Unlink handles DELETE /vaccination-points/:id/vaccines/:vaccine_id.
func (h *PointVaccineHandler) Unlink(c echo.Context, req *UnlinkVaccineRequest) (*service.MessageResult, error) {
	return h.links.Unlink(c.Request().Context(), req.VaccinationPointID, req.VaccineID)
}

// VaccinesForPoints handles GET /vaccination-points/vaccines.
func (h *PointVaccineHandler) VaccinesForPoints(c echo.Context, req *ListPointVaccinesRequest) ([]model.PointVaccines, error) {
	return h.links.VaccinesForPoints(c.Request().Context(), req.VaccinationPointID)
}

// PointsForVaccines handles GET /vaccination-points/by-vaccine.
func (h *PointVaccineHandler) PointsForVaccines(c echo.Context, req *ListVaccinePointsRequest) ([]model.VaccinePoints, error) {
	return h.links.PointsForVaccines(c.Request().Context(), req.VaccineID)
}
