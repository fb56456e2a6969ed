package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vacinabr/vaccination-api/internal/lib/optional"
	"github.com/vacinabr/vaccination-api/internal/model"
	"github.com/vacinabr/vaccination-api/internal/repository"
	"github.com/vacinabr/vaccination-api/internal/server"
	"github.com/vacinabr/vaccination-api/internal/service"
	"github.com/vacinabr/vaccination-api/internal/validation"
)

// VaccineHandler serves the /vaccines endpoints.
type VaccineHandler struct {
	Handler
	vaccines *service.VaccineService
}

// NewVaccineHandler constructs the handler.
func NewVaccineHandler(s *server.Server, vaccines *service.VaccineService) *VaccineHandler {
	return &VaccineHandler{
		Handler:  NewHandler(s),
		vaccines: vaccines,
	}
}

// ListVaccinesRequest filters the vaccine listing.
type ListVaccinesRequest struct {
	ID   *int64  `query:"id" json:"-"`
	Name *string `query:"name" json:"-"`
}

func (r *ListVaccinesRequest) Validate() error {
	return nil
}

// CreateVaccineRequest is the payload for registering a vaccine.
type CreateVaccineRequest struct {
	Name string `json:"name" validate:"required,min=1,max=150"`
}

func (r *CreateVaccineRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateVaccineRequest is the payload for a partial vaccine update.
type UpdateVaccineRequest struct {
	ID   int64                  `param:"id" json:"-"`
	Name optional.Value[string] `json:"name"`
}

func (r *UpdateVaccineRequest) Validate() error {
	if name, ok := r.Name.Get(); ok && strings.TrimSpace(name) == "" {
		return validation.CustomValidationErrors{
			{Field: "name", Message: "must not be empty"},
		}
	}
	return nil
}

// DeleteVaccineRequest carries the id of the vaccine to remove.
type DeleteVaccineRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *DeleteVaccineRequest) Validate() error {
	return nil
}

// List handles GET /vaccines.
func (h *VaccineHandler) List(c echo.Context, req *ListVaccinesRequest) ([]model.Vaccine, error) {
	return h.vaccines.List(c.Request().Context(), repository.VaccineFilter{
		ID:   req.ID,
		Name: req.Name,
	})
}

// Create handles POST /vaccines.
func (h *VaccineHandler) Create(c echo.Context, req *CreateVaccineRequest) (*service.CreateResult, error) {
	return h.vaccines.Create(c.Request().Context(), req.Name)
}

// Update handles PATCH /vaccines/:id.
func (h *VaccineHandler) Update(c echo.Context, req *UpdateVaccineRequest) (*service.MessageResult, error) {
	return h.vaccines.Update(c.Request().Context(), req.ID, service.UpdateVaccineParams{
		Name: req.Name,
	})
}

// Delete handles DELETE /vaccines/:id.
func (h *VaccineHandler) Delete(c echo.Context, req *DeleteVaccineRequest) (*service.MessageResult, error) {
	return h.vaccines.Delete(c.Request().Context(), req.ID)
}
