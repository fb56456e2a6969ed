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

// StateHandler serves the /states endpoints.
type StateHandler struct {
	Handler
	states *service.StateService
}

// NewStateHandler constructs the handler.
func NewStateHandler(s *server.Server, states *service.StateService) *StateHandler {
	return &StateHandler{
		Handler: NewHandler(s),
		states:  states,
	}
}

// ListStatesRequest filters the state listing.
type ListStatesRequest struct {
	ID       *int64  `query:"id" json:"-"`
	Name     *string `query:"name" json:"-"`
	IBGECode *string `query:"ibge_code" json:"-"`
}

func (r *ListStatesRequest) Validate() error {
	return nil
}

// CreateStateRequest is the payload for registering a state.
type CreateStateRequest struct {
	CountryID int64   `json:"country_id" validate:"required,gt=0"`
	Name      string  `json:"name" validate:"required,min=1,max=255"`
	IBGECode  *string `json:"ibge_code" validate:"omitempty,min=1,max=50"`
}

func (r *CreateStateRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateStateRequest is the payload for a partial state update.
type UpdateStateRequest struct {
	ID        int64                  `param:"id" json:"-"`
	CountryID optional.Value[int64]  `json:"country_id"`
	Name      optional.Value[string] `json:"name"`
	IBGECode  optional.Value[string] `json:"ibge_code"`
}

func (r *UpdateStateRequest) Validate() error {
	var errors validation.CustomValidationErrors
	if name, ok := r.Name.Get(); ok && strings.TrimSpace(name) == "" {
		errors = append(errors, validation.CustomValidationError{Field: "name", Message: "must not be empty"})
	}
	if countryID, ok := r.CountryID.Get(); ok && countryID <= 0 {
		errors = append(errors, validation.CustomValidationError{Field: "country_id", Message: "must be greater than 0"})
	}
	if len(errors) > 0 {
		return errors
	}
	return nil
}

// DeleteStateRequest carries the id of the state to remove.
type DeleteStateRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *DeleteStateRequest) Validate() error {
	return nil
}

// List handles GET /states.
func (h *StateHandler) List(c echo.Context, req *ListStatesRequest) ([]model.State, error) {
	return h.states.List(c.Request().Context(), repository.GeoFilter{
		ID:       req.ID,
		Name:     req.Name,
		IBGECode: req.IBGECode,
	})
}

// Create handles POST /states.
func (h *StateHandler) Create(c echo.Context, req *CreateStateRequest) (*service.CreateResult, error) {
	return h.states.Create(c.Request().Context(), req.CountryID, req.Name, req.IBGECode)
}

// Update handles PATCH /states/:id.
func (h *StateHandler) Update(c echo.Context, req *UpdateStateRequest) (*service.MessageResult, error) {
	return h.states.Update(c.Request().Context(), req.ID, service.UpdateStateParams{
		CountryID: req.CountryID,
		Name:      req.Name,
		IBGECode:  req.IBGECode,
	})
}

// Delete handles DELETE /states/:id.
func (h *StateHandler) Delete(c echo.Context, req *DeleteStateRequest) (*service.MessageResult, error) {
	return h.states.Delete(c.Request().Context(), req.ID)
}
