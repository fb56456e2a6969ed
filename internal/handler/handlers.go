package handler

import (
	"github.com/vacinabr/vaccination-api/internal/server"
	"github.com/vacinabr/vaccination-api/internal/service"
)

// Handlers groups all HTTP handlers so router setup passes one object
// around.
type Handlers struct {
	Health           *HealthHandler
	OpenAPI          *OpenAPIHandler
	Country          *CountryHandler
	State            *StateHandler
	City             *CityHandler
	VaccinationPoint *VaccinationPointHandler
	Vaccine          *VaccineHandler
	PointVaccine     *PointVaccineHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:           NewHealthHandler(s),
		OpenAPI:          NewOpenAPIHandler(s),
		Country:          NewCountryHandler(s, services.Country),
		State:            NewStateHandler(s, services.State),
		City:             NewCityHandler(s, services.City),
		VaccinationPoint: NewVaccinationPointHandler(s, services.VaccinationPoint),
		Vaccine:          NewVaccineHandler(s, services.Vaccine),
		PointVaccine:     NewPointVaccineHandler(s, services.PointVaccine),
	}
}
