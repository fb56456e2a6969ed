// Command seed loads the reference data files from the data folder into
// the database. It is idempotent: records that already exist are
// skipped, so it can run on every deploy.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/vacinabr/vaccination-api/internal/config"
	"github.com/vacinabr/vaccination-api/internal/database"
	"github.com/vacinabr/vaccination-api/internal/logger"
	"github.com/vacinabr/vaccination-api/internal/model"
	"github.com/vacinabr/vaccination-api/internal/repository"
	"github.com/vacinabr/vaccination-api/internal/server"
)

const dataDir = "data"

type seedCountry struct {
	Name     string  `json:"name"`
	IBGECode *string `json:"ibge_code"`
}

type seedState struct {
	Name            string  `json:"name"`
	IBGECode        *string `json:"ibge_code"`
	CountryIBGECode string  `json:"country_ibge_code"`
}

type seedCity struct {
	Name          string  `json:"name"`
	IBGECode      *string `json:"ibge_code"`
	StateIBGECode string  `json:"state_ibge_code"`
}

type seedVaccine struct {
	Name string `json:"name"`
}

type seedPoint struct {
	Name         string           `json:"name"`
	CityIBGECode string           `json:"city_ibge_code"`
	Schedules    []model.Schedule `json:"schedules"`
	FullAddress  *string          `json:"full_address"`
	Neighborhood *string          `json:"neighborhood"`
	ZipCode      *string          `json:"zip_code"`
	Phone        *string          `json:"phone"`
	Email        *string          `json:"email"`
	Website      *string          `json:"website"`
	Latitude     *float64         `json:"latitude"`
	Longitude    *float64         `json:"longitude"`
}

type seedLink struct {
	VaccinationPointName string `json:"vaccination_point_name"`
	VaccineName          string `json:"vaccine_name"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx := context.Background()
	if err := database.Migrate(ctx, &log, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	s, err := server.New(cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}
	defer func() {
		_ = s.DB.Close()
	}()

	seeder := &seeder{
		repos: repository.NewRepositories(s),
		log:   log,
	}

	if err := seeder.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().Msg("seeding complete")
}

type seeder struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// Run seeds in dependency order: countries before states before cities,
// points and vaccines before links.
func (s *seeder) Run(ctx context.Context) error {
	if err := s.seedCountries(ctx); err != nil {
		return fmt.Errorf("seeding countries: %w", err)
	}
	if err := s.seedStates(ctx); err != nil {
		return fmt.Errorf("seeding states: %w", err)
	}
	if err := s.seedCities(ctx); err != nil {
		return fmt.Errorf("seeding cities: %w", err)
	}
	if err := s.seedVaccines(ctx); err != nil {
		return fmt.Errorf("seeding vaccines: %w", err)
	}
	if err := s.seedVaccinationPoints(ctx); err != nil {
		return fmt.Errorf("seeding vaccination points: %w", err)
	}
	if err := s.seedLinks(ctx); err != nil {
		return fmt.Errorf("seeding vaccination point vaccines: %w", err)
	}
	return nil
}

// loadFile decodes one JSON data file into out.
func loadFile(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(dataDir, name))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (s *seeder) seedCountries(ctx context.Context) error {
	var countries []seedCountry
	if err := loadFile("countries.json", &countries); err != nil {
		return err
	}

	for _, c := range countries {
		if c.IBGECode != nil {
			existing, err := s.repos.Country.GetByIBGECode(ctx, *c.IBGECode)
			if err != nil {
				return err
			}
			if existing != nil {
				continue
			}
		}

		id, err := s.repos.Country.Create(ctx, c.Name, c.IBGECode)
		if err != nil {
			return err
		}
		s.log.Info().Int64("id", id).Str("name", c.Name).Msg("seeded country")
	}
	return nil
}

func (s *seeder) seedStates(ctx context.Context) error {
	var states []seedState
	if err := loadFile("states.json", &states); err != nil {
		return err
	}

	for _, st := range states {
		if st.IBGECode != nil {
			existing, err := s.repos.State.GetByIBGECode(ctx, *st.IBGECode)
			if err != nil {
				return err
			}
			if existing != nil {
				continue
			}
		}

		country, err := s.repos.Country.GetByIBGECode(ctx, st.CountryIBGECode)
		if err != nil {
			return err
		}
		if country == nil {
			return fmt.Errorf("state %q references unknown country IBGE code %s", st.Name, st.CountryIBGECode)
		}

		id, err := s.repos.State.Create(ctx, country.ID, st.Name, st.IBGECode)
		if err != nil {
			return err
		}
		s.log.Info().Int64("id", id).Str("name", st.Name).Msg("seeded state")
	}
	return nil
}

func (s *seeder) seedCities(ctx context.Context) error {
	var cities []seedCity
	if err := loadFile("cities.json", &cities); err != nil {
		return err
	}

	for _, c := range cities {
		if c.IBGECode != nil {
			existing, err := s.repos.City.GetByIBGECode(ctx, *c.IBGECode)
			if err != nil {
				return err
			}
			if existing != nil {
				continue
			}
		}

		state, err := s.repos.State.GetByIBGECode(ctx, c.StateIBGECode)
		if err != nil {
			return err
		}
		if state == nil {
			return fmt.Errorf("city %q references unknown state IBGE code %s", c.Name, c.StateIBGECode)
		}

		id, err := s.repos.City.Create(ctx, state.ID, c.Name, c.IBGECode)
		if err != nil {
			return err
		}
		s.log.Info().Int64("id", id).Str("name", c.Name).Msg("seeded city")
	}
	return nil
}

func (s *seeder) seedVaccines(ctx context.Context) error {
	var vaccines []seedVaccine
	if err := loadFile("vaccines.json", &vaccines); err != nil {
		return err
	}

	for _, v := range vaccines {
		existing, err := s.findVaccineByName(ctx, v.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		id, err := s.repos.Vaccine.Create(ctx, v.Name)
		if err != nil {
			return err
		}
		s.log.Info().Int64("id", id).Str("name", v.Name).Msg("seeded vaccine")
	}
	return nil
}

func (s *seeder) seedVaccinationPoints(ctx context.Context) error {
	var points []seedPoint
	if err := loadFile("vaccination_points.json", &points); err != nil {
		return err
	}

	for _, p := range points {
		existing, err := s.findPointByName(ctx, p.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		city, err := s.repos.City.GetByIBGECode(ctx, p.CityIBGECode)
		if err != nil {
			return err
		}
		if city == nil {
			return fmt.Errorf("vaccination point %q references unknown city IBGE code %s", p.Name, p.CityIBGECode)
		}

		id, err := s.repos.VaccinationPoint.Create(ctx, repository.CreatePointParams{
			CityID:       city.ID,
			Name:         p.Name,
			Schedules:    p.Schedules,
			FullAddress:  p.FullAddress,
			Neighborhood: p.Neighborhood,
			ZipCode:      p.ZipCode,
			Phone:        p.Phone,
			Email:        p.Email,
			Website:      p.Website,
			Latitude:     p.Latitude,
			Longitude:    p.Longitude,
		})
		if err != nil {
			return err
		}
		s.log.Info().Int64("id", id).Str("name", p.Name).Msg("seeded vaccination point")
	}
	return nil
}

func (s *seeder) seedLinks(ctx context.Context) error {
	var links []seedLink
	if err := loadFile("point_vaccines.json", &links); err != nil {
		return err
	}

	for _, l := range links {
		point, err := s.findPointByName(ctx, l.VaccinationPointName)
		if err != nil {
			return err
		}
		if point == nil {
			return fmt.Errorf("link references unknown vaccination point %q", l.VaccinationPointName)
		}

		vaccine, err := s.findVaccineByName(ctx, l.VaccineName)
		if err != nil {
			return err
		}
		if vaccine == nil {
			return fmt.Errorf("link references unknown vaccine %q", l.VaccineName)
		}

		existing, err := s.repos.PointVaccine.GetByPointAndVaccine(ctx, point.ID, vaccine.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		id, err := s.repos.PointVaccine.Create(ctx, point.ID, vaccine.ID)
		if err != nil {
			return err
		}
		s.log.Info().
			Int64("id", id).
			Str("vaccination_point", l.VaccinationPointName).
			Str("vaccine", l.VaccineName).
			Msg("seeded vaccination point vaccine")
	}
	return nil
}

// findVaccineByName returns the vaccine with exactly that name. The
// list filter matches substrings, so the result is narrowed here.
func (s *seeder) findVaccineByName(ctx context.Context, name string) (*model.Vaccine, error) {
	vaccines, err := s.repos.Vaccine.List(ctx, repository.VaccineFilter{Name: &name})
	if err != nil {
		return nil, err
	}
	for i := range vaccines {
		if vaccines[i].Name == name {
			return &vaccines[i], nil
		}
	}
	return nil, nil
}

func (s *seeder) findPointByName(ctx context.Context, name string) (*model.VaccinationPoint, error) {
	points, err := s.repos.VaccinationPoint.List(ctx, repository.PointFilter{Name: &name})
	if err != nil {
		return nil, err
	}
	for i := range points {
		if points[i].Name == name {
			return &points[i], nil
		}
	}
	return nil, nil
}
