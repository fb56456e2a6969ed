package service

import (
	"context"

	"github.com/vacinabr/vaccination-api/internal/lib/optional"
	"github.com/vacinabr/vaccination-api/internal/model"
	"github.com/vacinabr/vaccination-api/internal/repository"
)

// VaccinationPointStore is the persistence surface the vaccination
// point service consumes.
type VaccinationPointStore interface {
	List(ctx context.Context, filter repository.PointFilter) ([]model.VaccinationPoint, error)
	GetByID(ctx context.Context, id int64) (*model.VaccinationPoint, error)
	Create(ctx context.Context, params repository.CreatePointParams) (int64, error)
	Update(ctx context.Context, id int64, fields map[string]any) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// cityGetter is the slice of the city store needed to verify a parent
// reference.
type cityGetter interface {
	GetByID(ctx context.Context, id int64) (*model.City, error)
}

// UpdatePointParams carries the fields of a partial vaccination point
// update. Unset fields are left alone; null clears the optional ones.
type UpdatePointParams struct {
	CityID       optional.Value[int64]
	Name         optional.Value[string]
	Schedules    optional.Value[[]model.Schedule]
	FullAddress  optional.Value[string]
	Neighborhood optional.Value[string]
	ZipCode      optional.Value[string]
	Phone        optional.Value[string]
	Email        optional.Value[string]
	Website      optional.Value[string]
	Latitude     optional.Value[float64]
	Longitude    optional.Value[float64]
}

// VaccinationPointService implements the vaccination point business
// rules.
type VaccinationPointService struct {
	points VaccinationPointStore
	cities cityGetter
}

// NewVaccinationPointService constructs the service.
func NewVaccinationPointService(points VaccinationPointStore, cities cityGetter) *VaccinationPointService {
	return &VaccinationPointService{points: points, cities: cities}
}

// List returns the vaccination points matching the filter.
func (s *VaccinationPointService) List(ctx context.Context, filter repository.PointFilter) ([]model.VaccinationPoint, error) {
	return s.points.List(ctx, filter)
}

// Create registers a vaccination point under an existing city.
func (s *VaccinationPointService) Create(ctx context.Context, params repository.CreatePointParams) (*CreateResult, error) {
	city, err := s.cities.GetByID(ctx, params.CityID)
	if err != nil {
		return nil, err
	}
	if city == nil {
		return nil, notFoundError("City", "CITY", params.CityID)
	}

	id, err := s.points.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	return &CreateResult{ID: id, Message: "Vaccination point created successfully"}, nil
}

// Update applies a partial update to the vaccination point matching id.
// A new city reference must point at an existing city.
func (s *VaccinationPointService) Update(ctx context.Context, id int64, params UpdatePointParams) (*MessageResult, error) {
	existing, err := s.points.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, notFoundError("Vaccination point", "VACCINATION_POINT", id)
	}

	fields := map[string]any{}
	if params.CityID.Set() {
		cityID, ok := params.CityID.Get()
		if !ok {
			return nil, nullFieldError("city_id")
		}
		city, err := s.cities.GetByID(ctx, cityID)
		if err != nil {
			return nil, err
		}
		if city == nil {
			return nil, notFoundError("City", "CITY", cityID)
		}
		fields["city_id"] = cityID
	}
	if params.Name.Set() {
		name, ok := params.Name.Get()
		if !ok {
			return nil, nullFieldError("name")
		}
		fields["name"] = name
	}
	if params.Schedules.Set() {
		if schedules, ok := params.Schedules.Get(); ok {
			fields["schedules"] = schedules
		} else {
			fields["schedules"] = nil
		}
	}

	setOptional(fields, "full_address", params.FullAddress)
	setOptional(fields, "neighborhood", params.Neighborhood)
	setOptional(fields, "zip_code", params.ZipCode)
	setOptional(fields, "phone", params.Phone)
	setOptional(fields, "email", params.Email)
	setOptional(fields, "website", params.Website)
	setOptional(fields, "latitude", params.Latitude)
	setOptional(fields, "longitude", params.Longitude)

	if len(fields) == 0 {
		return nil, emptyUpdateError()
	}

	if _, err := s.points.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return &MessageResult{Message: "Vaccination point updated successfully"}, nil
}

// Delete removes the vaccination point matching id. Links to vaccines
// must be removed first; a remaining link fails the foreign key and
// surfaces as a constraint violation.
func (s *VaccinationPointService) Delete(ctx context.Context, id int64) (*MessageResult, error) {
	deleted, err := s.points.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, notFoundError("Vaccination point", "VACCINATION_POINT", id)
	}

	return &MessageResult{Message: "Vaccination point deleted successfully"}, nil
}

// setOptional records an optional column into the update map: a value
// sets the column, null clears it, unset leaves it out.
func setOptional[T any](fields map[string]any, column string, v optional.Value[T]) {
	if !v.Set() {
		return
	}
	if value, ok := v.Get(); ok {
		fields[column] = value
	} else {
		fields[column] = nil
	}
}
