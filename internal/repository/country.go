package repository

import (
	"context"

	"github.com/vacinabr/vaccination-api/internal/database"
	"github.com/vacinabr/vaccination-api/internal/model"
)

// CountryRepository persists countries. List, GetByID, GetByIBGECode,
// Update, and Delete come from the shared lookup-table implementation.
type CountryRepository struct {
	geoRepository[model.Country]
}

// NewCountryRepository constructs the repository over db.
func NewCountryRepository(db database.Querier) *CountryRepository {
	return &CountryRepository{
		geoRepository: geoRepository[model.Country]{
			db:      db,
			table:   "countries",
			columns: "id, name, ibge_code, created_at",
		},
	}
}

// Create inserts a country and returns the assigned id.
func (r *CountryRepository) Create(ctx context.Context, name string, ibgeCode *string) (int64, error) {
	return r.create(ctx, name, ibgeCode, nil)
}
