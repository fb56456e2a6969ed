package repository

import (
	"context"

	"github.com/vacinabr/vaccination-api/internal/database"
	"github.com/vacinabr/vaccination-api/internal/model"
)

// CityRepository persists cities, which carry a state foreign key.
type CityRepository struct {
	geoRepository[model.City]
}

// NewCityRepository constructs the repository over db.
func NewCityRepository(db database.Querier) *CityRepository {
	return &CityRepository{
		geoRepository: geoRepository[model.City]{
			db:           db,
			table:        "cities",
			columns:      "id, state_id, name, ibge_code, created_at",
			parentColumn: "state_id",
		},
	}
}

// Create inserts a city and returns the assigned id.
func (r *CityRepository) Create(ctx context.Context, stateID int64, name string, ibgeCode *string) (int64, error) {
	return r.create(ctx, name, ibgeCode, &stateID)
}
