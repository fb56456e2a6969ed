package handler

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vacinabr/vaccination-api/internal/lib/optional"
	"github.com/vacinabr/vaccination-api/internal/model"
	"github.com/vacinabr/vaccination-api/internal/repository"
	"github.com/vacinabr/vaccination-api/internal/server"
	"github.com/vacinabr/vaccination-api/internal/service"
	"github.com/vacinabr/vaccination-api/internal/validation"
)

// VaccinationPointHandler serves the /vaccination-points endpoints.
type VaccinationPointHandler struct {
	Handler
	points *service.VaccinationPointService
}

// NewVaccinationPointHandler constructs the handler.
func NewVaccinationPointHandler(s *server.Server, points *service.VaccinationPointService) *VaccinationPointHandler {
	return &VaccinationPointHandler{
		Handler: NewHandler(s),
		points:  points,
	}
}

// ListVaccinationPointsRequest filters the vaccination point listing.
type ListVaccinationPointsRequest struct {
	ID     *int64  `query:"id" json:"-"`
	Name   *string `query:"name" json:"-"`
	CityID *int64  `query:"city_id" json:"-"`
}

func (r *ListVaccinationPointsRequest) Validate() error {
	return nil
}

// CreateVaccinationPointRequest is the payload for registering a
// vaccination point. Only city_id and name are mandatory.
type CreateVaccinationPointRequest struct {
	CityID       int64            `json:"city_id" validate:"required,gt=0"`
	Name         string           `json:"name" validate:"required,min=3,max=50"`
	Schedules    []model.Schedule `json:"schedules"`
	FullAddress  *string          `json:"full_address" validate:"omitempty,max=300"`
	Neighborhood *string          `json:"neighborhood" validate:"omitempty,max=150"`
	ZipCode      *string          `json:"zip_code" validate:"omitempty,max=20"`
	Phone        *string          `json:"phone" validate:"omitempty,max=30"`
	Email        *string          `json:"email" validate:"omitempty,email"`
	Website      *string          `json:"website" validate:"omitempty,url"`
	Latitude     *float64         `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude    *float64         `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

func (r *CreateVaccinationPointRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	return validateSchedules(r.Schedules)
}

// UpdateVaccinationPointRequest is the payload for a partial update.
// Absent fields are left untouched; the optional fields may be set to
// null to clear them.
type UpdateVaccinationPointRequest struct {
	ID           int64                            `param:"id" json:"-"`
	CityID       optional.Value[int64]            `json:"city_id"`
	Name         optional.Value[string]           `json:"name"`
	Schedules    optional.Value[[]model.Schedule] `json:"schedules"`
	FullAddress  optional.Value[string]           `json:"full_address"`
	Neighborhood optional.Value[string]           `json:"neighborhood"`
	ZipCode      optional.Value[string]           `json:"zip_code"`
	Phone        optional.Value[string]           `json:"phone"`
	Email        optional.Value[string]           `json:"email"`
	Website      optional.Value[string]           `json:"website"`
	Latitude     optional.Value[float64]          `json:"latitude"`
	Longitude    optional.Value[float64]          `json:"longitude"`
}

func (r *UpdateVaccinationPointRequest) Validate() error {
	var errors validation.CustomValidationErrors

	if name, ok := r.Name.Get(); ok {
		if trimmed := strings.TrimSpace(name); len(trimmed) < 3 || len(trimmed) > 50 {
			errors = append(errors, validation.CustomValidationError{Field: "name", Message: "must be between 3 and 50 characters"})
		}
	}
	if cityID, ok := r.CityID.Get(); ok && cityID <= 0 {
		errors = append(errors, validation.CustomValidationError{Field: "city_id", Message: "must be greater than 0"})
	}
	if lat, ok := r.Latitude.Get(); ok && (lat < -90 || lat > 90) {
		errors = append(errors, validation.CustomValidationError{Field: "latitude", Message: "must be between -90 and 90"})
	}
	if lon, ok := r.Longitude.Get(); ok && (lon < -180 || lon > 180) {
		errors = append(errors, validation.CustomValidationError{Field: "longitude", Message: "must be between -180 and 180"})
	}
	if schedules, ok := r.Schedules.Get(); ok {
		if err := validateSchedules(schedules); err != nil {
			errors = append(errors, err.(validation.CustomValidationErrors)...)
		}
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}

// DeleteVaccinationPointRequest carries the id of the point to remove.
type DeleteVaccinationPointRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *DeleteVaccinationPointRequest) Validate() error {
	return nil
}

// validateSchedules runs the schedule checks, one field error per bad
// entry.
func validateSchedules(schedules []model.Schedule) error {
	var errors validation.CustomValidationErrors
	for i, s := range schedules {
		if err := s.Validate(); err != nil {
			errors = append(errors, validation.CustomValidationError{
				Field:   fmt.Sprintf("schedules[%d]", i),
				Message: err.Error(),
			})
		}
	}
	if len(errors) > 0 {
		return errors
	}
	return nil
}

// List handles GET /vaccination-points.
func (h *VaccinationPointHandler) List(c echo.Context, req *ListVaccinationPointsRequest) ([]model.VaccinationPoint, error) {
	return h.points.List(c.Request().Context(), repository.PointFilter{
		ID:     req.ID,
		Name:   req.Name,
		CityID: req.CityID,
	})
}

// Create handles POST /vaccination-points.
func (h *VaccinationPointHandler) Create(c echo.Context, req *CreateVaccinationPointRequest) (*service.CreateResult, error) {
	return h.points.Create(c.Request().Context(), repository.CreatePointParams{
		CityID:       req.CityID,
		Name:         req.Name,
		Schedules:    req.Schedules,
		FullAddress:  req.FullAddress,
		Neighborhood: req.Neighborhood,
		ZipCode:      req.ZipCode,
		Phone:        req.Phone,
		Email:        req.Email,
		Website:      req.Website,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	})
}

// Update handles PATCH /vaccination-points/:id.
func (h *VaccinationPointHandler) Update(c echo.Context, req *UpdateVaccinationPointRequest) (*service.MessageResult, error) {
	return h.points.Update(c.Request().Context(), req.ID, service.UpdatePointParams{
		CityID:       req.CityID,
		Name:         req.Name,
		Schedules:    req.Schedules,
		FullAddress:  req.FullAddress,
		Neighborhood: req.Neighborhood,
		ZipCode:      req.ZipCode,
		Phone:        req.Phone,
		Email:        req.Email,
		Website:      req.Website,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	})
}

// Delete handles DELETE /vaccination-points/:id.
func (h *VaccinationPointHandler) Delete(c echo.Context, req *DeleteVaccinationPointRequest) (*service.MessageResult, error) {
	return h.points.Delete(c.Request().Context(), req.ID)
}
