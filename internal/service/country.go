package service

import (
	"context"

	"github.com/vacinabr/vaccination-api/internal/lib/optional"
	"github.com/vacinabr/vaccination-api/internal/model"
	"github.com/vacinabr/vaccination-api/internal/repository"
)

// CountryStore is the persistence surface the country service consumes.
type CountryStore interface {
	List(ctx context.Context, filter repository.GeoFilter) ([]model.Country, error)
	GetByID(ctx context.Context, id int64) (*model.Country, error)
	GetByIBGECode(ctx context.Context, ibgeCode string) (*model.Country, error)
	Create(ctx context.Context, name string, ibgeCode *string) (int64, error)
	Update(ctx context.Context, id int64, fields map[string]any) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// UpdateCountryParams carries the fields of a partial country update.
// Unset fields are left alone.
type UpdateCountryParams struct {
	Name     optional.Value[string]
	IBGECode optional.Value[string]
}

// CountryService implements the country business rules.
type CountryService struct {
	countries CountryStore
}

// NewCountryService constructs the service.
func NewCountryService(countries CountryStore) *CountryService {
	return &CountryService{countries: countries}
}

// List returns the countries matching the filter.
func (s *CountryService) List(ctx context.Context, filter repository.GeoFilter) ([]model.Country, error) {
	return s.countries.List(ctx, filter)
}

// Create registers a country. The IBGE code, when given, must not be in
// use by another country.
func (s *CountryService) Create(ctx context.Context, name string, ibgeCode *string) (*CreateResult, error) {
	if ibgeCode != nil {
		existing, err := s.countries.GetByIBGECode(ctx, *ibgeCode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, duplicateCodeError("Country", "COUNTRY", *ibgeCode)
		}
	}

	id, err := s.countries.Create(ctx, name, ibgeCode)
	if err != nil {
		return nil, err
	}

	return &CreateResult{ID: id, Message: "Country created successfully"}, nil
}

// Update applies a partial update to the country matching id.
func (s *CountryService) Update(ctx context.Context, id int64, params UpdateCountryParams) (*MessageResult, error) {
	existing, err := s.countries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, notFoundError("Country", "COUNTRY", id)
	}

	fields := map[string]any{}
	if params.Name.Set() {
		name, ok := params.Name.Get()
		if !ok {
			return nil, nullFieldError("name")
		}
		fields["name"] = name
	}
	if params.IBGECode.Set() {
		if code, ok := params.IBGECode.Get(); ok {
			other, err := s.countries.GetByIBGECode(ctx, code)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != id {
				return nil, duplicateCodeError("Country", "COUNTRY", code)
			}
			fields["ibge_code"] = code
		} else {
			fields["ibge_code"] = nil
		}
	}
	if len(fields) == 0 {
		return nil, emptyUpdateError()
	}

	if _, err := s.countries.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return &MessageResult{Message: "Country updated successfully"}, nil
}

// Delete removes the country matching id. Its states go with it through
// the cascading foreign key; a state that still has cities blocks the
// delete and surfaces as a constraint violation.
func (s *CountryService) Delete(ctx context.Context, id int64) (*MessageResult, error) {
	deleted, err := s.countries.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, notFoundError("Country", "COUNTRY", id)
	}

	return &MessageResult{Message: "Country deleted successfully"}, nil
}
