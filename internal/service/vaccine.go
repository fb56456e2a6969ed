package service

import (
	"context"

	"github.com/vacinabr/vaccination-api/internal/lib/optional"
	"github.com/vacinabr/vaccination-api/internal/model"
	"github.com/vacinabr/vaccination-api/internal/repository"
)

// VaccineStore is the persistence surface the vaccine service consumes.
type VaccineStore interface {
	List(ctx context.Context, filter repository.VaccineFilter) ([]model.Vaccine, error)
	GetByID(ctx context.Context, id int64) (*model.Vaccine, error)
	Create(ctx context.Context, name string) (int64, error)
	Update(ctx context.Context, id int64, fields map[string]any) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// UpdateVaccineParams carries the fields of a partial vaccine update.
type UpdateVaccineParams struct {
	Name optional.Value[string]
}

// VaccineService implements the vaccine business rules.
type VaccineService struct {
	vaccines VaccineStore
}

// NewVaccineService constructs the service.
func NewVaccineService(vaccines VaccineStore) *VaccineService {
	return &VaccineService{vaccines: vaccines}
}

// List returns the vaccines matching the filter.
func (s *VaccineService) List(ctx context.Context, filter repository.VaccineFilter) ([]model.Vaccine, error) {
	return s.vaccines.List(ctx, filter)
}

// Create registers a vaccine.
func (s *VaccineService) Create(ctx context.Context, name string) (*CreateResult, error) {
	id, err := s.vaccines.Create(ctx, name)
	if err != nil {
		return nil, err
	}

	return &CreateResult{ID: id, Message: "Vaccine created successfully"}, nil
}

// Update applies a partial update to the vaccine matching id.
func (s *VaccineService) Update(ctx context.Context, id int64, params UpdateVaccineParams) (*MessageResult, error) {
	existing, err := s.vaccines.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, notFoundError("Vaccine", "VACCINE", id)
	}

	fields := map[string]any{}
	if params.Name.Set() {
		name, ok := params.Name.Get()
		if !ok {
			return nil, nullFieldError("name")
		}
		fields["name"] = name
	}
	if len(fields) == 0 {
		return nil, emptyUpdateError()
	}

	if _, err := s.vaccines.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return &MessageResult{Message: "Vaccine updated successfully"}, nil
}

// Delete removes the vaccine matching id. A vaccine still linked to a
// vaccination point fails the foreign key and surfaces as a constraint
// violation.
func (s *VaccineService) Delete(ctx context.Context, id int64) (*MessageResult, error) {
	deleted, err := s.vaccines.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, notFoundError("Vaccine", "VACCINE", id)
	}

	return &MessageResult{Message: "Vaccine deleted successfully"}, nil
}
