package service

import (
	"context"

	"github.com/vacinabr/vaccination-api/internal/lib/optional"
	"github.com/vacinabr/vaccination-api/internal/model"
	"github.com/vacinabr/vaccination-api/internal/repository"
)

// CityStore is the persistence surface the city service consumes.
type CityStore interface {
	List(ctx context.Context, filter repository.GeoFilter) ([]model.City, error)
	GetByID(ctx context.Context, id int64) (*model.City, error)
	GetByIBGECode(ctx context.Context, ibgeCode string) (*model.City, error)
	Create(ctx context.Context, stateID int64, name string, ibgeCode *string) (int64, error)
	Update(ctx context.Context, id int64, fields map[string]any) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// stateGetter is the slice of the state store needed to verify a parent
// reference.
type stateGetter interface {
	GetByID(ctx context.Context, id int64) (*model.State, error)
}

// UpdateCityParams carries the fields of a partial city update. Unset
// fields are left alone.
type UpdateCityParams struct {
	StateID  optional.Value[int64]
	Name     optional.Value[string]
	IBGECode optional.Value[string]
}

// CityService implements the city business rules.
type CityService struct {
	cities CityStore
	states stateGetter
}

// NewCityService constructs the service.
func NewCityService(cities CityStore, states stateGetter) *CityService {
	return &CityService{cities: cities, states: states}
}

// List returns the cities matching the filter.
func (s *CityService) List(ctx context.Context, filter repository.GeoFilter) ([]model.City, error) {
	return s.cities.List(ctx, filter)
}

// Create registers a city under an existing state. The IBGE code, when
// given, must not be in use by another city.
func (s *CityService) Create(ctx context.Context, stateID int64, name string, ibgeCode *string) (*CreateResult, error) {
	state, err := s.states.GetByID(ctx, stateID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, notFoundError("State", "STATE", stateID)
	}

	if ibgeCode != nil {
		existing, err := s.cities.GetByIBGECode(ctx, *ibgeCode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, duplicateCodeError("City", "CITY", *ibgeCode)
		}
	}

	id, err := s.cities.Create(ctx, stateID, name, ibgeCode)
	if err != nil {
		return nil, err
	}

	return &CreateResult{ID: id, Message: "City created successfully"}, nil
}

// Update applies a partial update to the city matching id. A new state
// reference must point at an existing state.
func (s *CityService) Update(ctx context.Context, id int64, params UpdateCityParams) (*MessageResult, error) {
	existing, err := s.cities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, notFoundError("City", "CITY", id)
	}

	fields := map[string]any{}
	if params.StateID.Set() {
		stateID, ok := params.StateID.Get()
		if !ok {
			return nil, nullFieldError("state_id")
		}
		state, err := s.states.GetByID(ctx, stateID)
		if err != nil {
			return nil, err
		}
		if state == nil {
			return nil, notFoundError("State", "STATE", stateID)
		}
		fields["state_id"] = stateID
	}
	if params.Name.Set() {
		name, ok := params.Name.Get()
		if !ok {
			return nil, nullFieldError("name")
		}
		fields["name"] = name
	}
	if params.IBGECode.Set() {
		if code, ok := params.IBGECode.Get(); ok {
			other, err := s.cities.GetByIBGECode(ctx, code)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != id {
				return nil, duplicateCodeError("City", "CITY", code)
			}
			fields["ibge_code"] = code
		} else {
			fields["ibge_code"] = nil
		}
	}
	if len(fields) == 0 {
		return nil, emptyUpdateError()
	}

	if _, err := s.cities.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return &MessageResult{Message: "City updated successfully"}, nil
}

// Delete removes the city matching id. A city that still has
// vaccination points fails the foreign key and surfaces as a constraint
// violation.
func (s *CityService) Delete(ctx context.Context, id int64) (*MessageResult, error) {
	deleted, err := s.cities.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, notFoundError("City", "CITY", id)
	}

	return &MessageResult{Message: "City deleted successfully"}, nil
}
