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

// CityHandler serves the /cities endpoints.
type CityHandler struct {
	Handler
	cities *service.CityService
}

// NewCityHandler constructs the handler.
func NewCityHandler(s *server.Server, cities *service.CityService) *CityHandler {
	return &CityHandler{
		Handler: NewHandler(s),
		cities:  cities,
	}
}

// ListCitiesRequest filters the city listing.
type ListCitiesRequest struct {
	ID       *int64  `query:"id" json:"-"`
	Name     *string `query:"name" json:"-"`
	IBGECode *string `query:"ibge_code" json:"-"`
}

func (r *ListCitiesRequest) Validate() error {
	return nil
}

// CreateCityRequest is the payload for registering a city.
type CreateCityRequest struct {
	StateID  int64   `json:"state_id" validate:"required,gt=0"`
	Name     string  `json:"name" validate:"required,min=1,max=255"`
	IBGECode *string `json:"ibge_code" validate:"omitempty,min=1,max=50"`
}

func (r *CreateCityRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateCityRequest is the payload for a partial city update.
type UpdateCityRequest struct {
	ID       int64                  `param:"id" json:"-"`
	StateID  optional.Value[int64]  `json:"state_id"`
	Name     optional.Value[string] `json:"name"`
	IBGECode optional.Value[string] `json:"ibge_code"`
}

func (r *UpdateCityRequest) Validate() error {
	var errors validation.CustomValidationErrors
	if name, ok := r.Name.Get(); ok && strings.TrimSpace(name) == "" {
		errors = append(errors, validation.CustomValidationError{Field: "name", Message: "must not be empty"})
	}
	if stateID, ok := r.StateID.Get(); ok && stateID <= 0 {
		errors = append(errors, validation.CustomValidationError{Field: "state_id", Message: "must be greater than 0"})
	}
	if len(errors) > 0 {
		return errors
	}
	return nil
}

// DeleteCityRequest carries the id of the city to remove.
type DeleteCityRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *DeleteCityRequest) Validate() error {
	return nil
}

// List handles GET /cities.
func (h *CityHandler) List(c echo.Context, req *ListCitiesRequest) ([]model.City, error) {
	return h.cities.List(c.Request().Context(), repository.GeoFilter{
		ID:       req.ID,
		Name:     req.Name,
		IBGECode: req.IBGECode,
	})
}

// Create handles POST /cities.
func (h *CityHandler) Create(c echo.Context, req *CreateCityRequest) (*service.CreateResult, error) {
	return h.cities.Create(c.Request().Context(), req.StateID, req.Name, req.IBGECode)
}

// Update handles PATCH /cities/:id.
func (h *CityHandler) Update(c echo.Context, req *UpdateCityRequest) (*service.MessageResult, error) {
	return h.cities.Update(c.Request().Context(), req.ID, service.UpdateCityParams{
		StateID:  req.StateID,
		Name:     req.Name,
		IBGECode: req.IBGECode,
	})
}

// Delete handles DELETE /cities/:id.
func (h *CityHandler) Delete(c echo.Context, req *DeleteCityRequest) (*service.MessageResult, error) {
	return h.cities.Delete(c.Request().Context(), req.ID)
}
