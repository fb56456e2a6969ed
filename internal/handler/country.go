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

// CountryHandler serves the /countries endpoints.
type CountryHandler struct {
	Handler
	countries *service.CountryService
}

// NewCountryHandler constructs the handler.
func NewCountryHandler(s *server.Server, countries *service.CountryService) *CountryHandler {
	return &CountryHandler{
		Handler:   NewHandler(s),
		countries: countries,
	}
}

// ListCountriesRequest filters the country listing. All filters are
// optional query parameters.
type ListCountriesRequest struct {
	ID       *int64  `query:"id" json:"-"`
	Name     *string `query:"name" json:"-"`
	IBGECode *string `query:"ibge_code" json:"-"`
}

func (r *ListCountriesRequest) Validate() error {
	return nil
}

// CreateCountryRequest is the payload for registering a country.
type CreateCountryRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=255"`
	IBGECode *string `json:"ibge_code" validate:"omitempty,min=1,max=50"`
}

func (r *CreateCountryRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateCountryRequest is the payload for a partial country update.
// Absent fields are left untouched; ibge_code may be set to null.
type UpdateCountryRequest struct {
	ID       int64                  `param:"id" json:"-"`
	Name     optional.Value[string] `json:"name"`
	IBGECode optional.Value[string] `json:"ibge_code"`
}

func (r *UpdateCountryRequest) Validate() error {
	if name, ok := r.Name.Get(); ok && strings.TrimSpace(name) == "" {
		return validation.CustomValidationErrors{
			{Field: "name", Message: "must not be empty"},
		}
	}
	return nil
}

// DeleteCountryRequest carries the id of the country to remove.
type DeleteCountryRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *DeleteCountryRequest) Validate() error {
	return nil
}

// List handles GET /countries.
func (h *CountryHandler) List(c echo.Context, req *ListCountriesRequest) ([]model.Country, error) {
	return h.countries.List(c.Request().Context(), repository.GeoFilter{
		ID:       req.ID,
		Name:     req.Name,
		IBGECode: req.IBGECode,
	})
}

// Create handles POST /countries.
func (h *CountryHandler) Create(c echo.Context, req *CreateCountryRequest) (*service.CreateResult, error) {
	return h.countries.Create(c.Request().Context(), req.Name, req.IBGECode)
}

// Update handles PATCH /countries/:id.
func (h *CountryHandler) Update(c echo.Context, req *UpdateCountryRequest) (*service.MessageResult, error) {
	return h.countries.Update(c.Request().Context(), req.ID, service.UpdateCountryParams{
		Name:     req.Name,
		IBGECode: req.IBGECode,
	})
}

// Delete handles DELETE /countries/:id.
func (h *CountryHandler) Delete(c echo.Context, req *DeleteCountryRequest) (*service.MessageResult, error) {
	return h.countries.Delete(c.Request().Context(), req.ID)
}
