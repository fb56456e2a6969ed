package service

import (
	"context"

	"github.com/vacinabr/vaccination-api/internal/lib/optional"
	"github.com/vacinabr/vaccination-api/internal/model"
	"github.com/vacinabr/vaccination-api/internal/repository"
)

// StateStore is the persistence surface the state service consumes.
type StateStore interface {
	List(ctx context.Context, filter repository.GeoFilter) ([]model.State, error)
	GetByID(ctx context.Context, id int64) (*model.State, error)
	GetByIBGECode(ctx context.Context, ibgeCode string) (*model.State, error)
	Create(ctx context.Context, countryID int64, name string, ibgeCode *string) (int64, error)
	Update(ctx context.Context, id int64, fields map[string]any) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// countryGetter is the slice of the country store needed to verify a
// parent reference.
type countryGetter interface {
	GetByID(ctx context.Context, id int64) (*model.Country, error)
}

// UpdateStateParams carries the fields of a partial state update. Unset
// fields are left alone.
type UpdateStateParams struct {
	CountryID optional.Value[int64]
	Name      optional.Value[string]
	IBGECode  optional.Value[string]
}

// StateService implements the state business rules.
type StateService struct {
	states    StateStore
	countries countryGetter
}

// NewStateService constructs the service.
func NewStateService(states StateStore, countries countryGetter) *StateService {
	return &StateService{states: states, countries: countries}
}

// List returns the states matching the filter.
func (s *StateService) List(ctx context.Context, filter repository.GeoFilter) ([]model.State, error) {
	return s.states.List(ctx, filter)
}

// Create registers a state under an existing country. The IBGE code,
// when given, must not be in use by another state.
func (s *StateService) Create(ctx context.Context, countryID int64, name string, ibgeCode *string) (*CreateResult, error) {
	country, err := s.countries.GetByID(ctx, countryID)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, notFoundError("Country", "COUNTRY", countryID)
	}

	if ibgeCode != nil {
		existing, err := s.states.GetByIBGECode(ctx, *ibgeCode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, duplicateCodeError("State", "STATE", *ibgeCode)
		}
	}

	id, err := s.states.Create(ctx, countryID, name, ibgeCode)
	if err != nil {
		return nil, err
	}

	return &CreateResult{ID: id, Message: "State created successfully"}, nil
}

// Update applies a partial update to the state matching id. A new
// country reference must point at an existing country.
func (s *StateService) Update(ctx context.Context, id int64, params UpdateStateParams) (*MessageResult, error) {
	existing, err := s.states.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, notFoundError("State", "STATE", id)
	}

	fields := map[string]any{}
	if params.CountryID.Set() {
		countryID, ok := params.CountryID.Get()
		if !ok {
			return nil, nullFieldError("country_id")
		}
		country, err := s.countries.GetByID(ctx, countryID)
		if err != nil {
			return nil, err
		}
		if country == nil {
			return nil, notFoundError("Country", "COUNTRY", countryID)
		}
		fields["country_id"] = countryID
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
			other, err := s.states.GetByIBGECode(ctx, code)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != id {
				return nil, duplicateCodeError("State", "STATE", code)
			}
			fields["ibge_code"] = code
		} else {
			fields["ibge_code"] = nil
		}
	}
	if len(fields) == 0 {
		return nil, emptyUpdateError()
	}

	if _, err := s.states.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return &MessageResult{Message: "State updated successfully"}, nil
}

// Delete removes the state matching id. A state that still has cities
// fails the foreign key and surfaces as a constraint violation.
func (s *StateService) Delete(ctx context.Context, id int64) (*MessageResult, error) {
	deleted, err := s.states.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, notFoundError("State", "STATE", id)
	}

	return &MessageResult{Message: "State deleted successfully"}, nil
}
