// Package repository handles all interactions with the database.
//
// It contains the SQL statements and methods to fetch, persist, update,
// and delete rows, keeping SQL out of the service layer. Repositories
// report "not found" as a nil result, never as an error; interpreting
// absence is the caller's job.
package repository

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vacinabr/vaccination-api/internal/server"
)

// Repositories is the container for all repository instances.
type Repositories struct {
	Country          *CountryRepository
	State            *StateRepository
	City             *CityRepository
	VaccinationPoint *VaccinationPointRepository
	Vaccine          *VaccineRepository
	PointVaccine     *PointVaccineRepository
}

// NewRepositories constructs the repository container on top of the
// server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	db := s.DB.Pool

	return &Repositories{
		Country:          NewCountryRepository(db),
		State:            NewStateRepository(db),
		City:             NewCityRepository(db),
		VaccinationPoint: NewVaccinationPointRepository(db),
		Vaccine:          NewVaccineRepository(db),
		PointVaccine:     NewPointVaccineRepository(db),
	}
}

// buildUpdate assembles a partial UPDATE statement from a column→value
// map. Columns are sorted so the generated SQL is deterministic. The id
// is the final positional argument.
func buildUpdate(table string, id int64, fields map[string]any) (string, []any) {
	columns := make([]string, 0, len(fields))
	for column := range fields {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	sets := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns)+1)
	for i, column := range columns {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, i+1))
		args = append(args, fields[column])
	}

	sql := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", table, strings.Join(sets, ", "), len(args)+1)
	args = append(args, id)

	return sql, args
}
