package repository

import (
	"context"

	"github.com/vacinabr/vaccination-api/internal/database"
	"github.com/vacinabr/vaccination-api/internal/model"
)

// StateRepository persists states, which carry a country foreign key.
type StateRepository struct {
	geoRepository[model.State]
}

// NewStateRepository constructs the repository over db.
func NewStateRepository(db database.Querier) *StateRepository {
	return &StateRepository{
		geoRepository: geoRepository[model.State]{
			db:           db,
			table:        "states",
			columns:      "id, country_id, name, ibge_code, created_at",
			parentColumn: "country_id",
		},
	}
}

// Create inserts a state and returns the assigned id.
func (r *StateRepository) Create(ctx context.Context, countryID int64, name string, ibgeCode *string) (int64, error) {
	return r.create(ctx, name, ibgeCode, &countryID)
}
