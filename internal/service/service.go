// Package service implements the business rules on top of the
// repositories.
//
// Services own the error taxonomy: repositories report absence as nil,
// and services turn that into typed HTTP errors with entity-specific
// codes. Each service declares the narrow store interface it consumes,
// so tests can substitute fakes without a database.
package service

import (
	"fmt"

	"github.com/vacinabr/vaccination-api/internal/errs"
	"github.com/vacinabr/vaccination-api/internal/repository"
	"github.com/vacinabr/vaccination-api/internal/server"
)

// CreateResult is the response body for successful creations.
type CreateResult struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// MessageResult is the response body for updates, deletions, and link
// operations.
type MessageResult struct {
	Message string `json:"message"`
}

// Services is the container for all service instances.
type Services struct {
	Country          *CountryService
	State            *StateService
	City             *CityService
	VaccinationPoint *VaccinationPointService
	Vaccine          *VaccineService
	PointVaccine     *PointVaccineService
}

// NewServices constructs the service container on top of the
// repositories.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Country:          NewCountryService(repos.Country),
		State:            NewStateService(repos.State, repos.Country),
		City:             NewCityService(repos.City, repos.State),
		VaccinationPoint: NewVaccinationPointService(repos.VaccinationPoint, repos.City),
		Vaccine:          NewVaccineService(repos.Vaccine),
		PointVaccine:     NewPointVaccineService(repos.PointVaccine, repos.VaccinationPoint, repos.Vaccine),
	}
}

// notFoundError builds the 404 for a missing entity. label is the
// human-readable entity name, prefix the error-code prefix
// (e.g. "Vaccination point" / "VACCINATION_POINT").
func notFoundError(label, prefix string, id int64) *errs.HTTPError {
	code := prefix + "_NOT_FOUND"
	return errs.NewNotFoundError(fmt.Sprintf("%s with ID %d not found", label, id), true, &code)
}

// duplicateCodeError builds the 400 for an IBGE code collision.
func duplicateCodeError(label, prefix, ibgeCode string) *errs.HTTPError {
	code := prefix + "_ALREADY_EXISTS"
	message := fmt.Sprintf("%s with IBGE code %s already exists", label, ibgeCode)
	return errs.NewBadRequestError(message, true, &code, nil, nil)
}

// emptyUpdateError builds the 400 returned when a partial update names
// no fields at all.
func emptyUpdateError() *errs.HTTPError {
	code := "EMPTY_UPDATE"
	return errs.NewBadRequestError("No fields provided for update", true, &code, nil, nil)
}

// nullFieldError builds the 400 returned when a partial update sets a
// mandatory field to null.
func nullFieldError(field string) *errs.HTTPError {
	return errs.NewBadRequestError(
		fmt.Sprintf("Field %s cannot be null", field),
		true, nil,
		[]errs.FieldError{{Field: field, Error: "must not be null"}},
		nil,
	)
}
