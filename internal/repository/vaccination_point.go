package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/vacinabr/vaccination-api/internal/database"
	"github.com/vacinabr/vaccination-api/internal/model"
)

const vaccinationPointColumns = "id, city_id, name, schedules, full_address, neighborhood, zip_code, phone, email, website, latitude, longitude, created_at"

// PointFilter narrows a vaccination point listing. Nil fields are
// ignored.
type PointFilter struct {
	ID     *int64
	Name   *string
	CityID *int64
}

// CreatePointParams carries the full field set accepted on creation.
// Everything beyond CityID and Name is optional.
type CreatePointParams struct {
	CityID       int64
	Name         string
	Schedules    []model.Schedule
	FullAddress  *string
	Neighborhood *string
	ZipCode      *string
	Phone        *string
	Email        *string
	Website      *string
	Latitude     *float64
	Longitude    *float64
}

// VaccinationPointRepository persists vaccination points. The schedules
// column is JSONB and round-trips through the model.Schedule slice.
type VaccinationPointRepository struct {
	db database.Querier
}

// NewVaccinationPointRepository constructs the repository over db.
func NewVaccinationPointRepository(db database.Querier) *VaccinationPointRepository {
	return &VaccinationPointRepository{db: db}
}

// List returns all points matching the filter, ordered by id.
func (r *VaccinationPointRepository) List(ctx context.Context, filter PointFilter) ([]model.VaccinationPoint, error) {
	var (
		conds []string
		args  []any
	)

	if filter.ID != nil {
		args = append(args, *filter.ID)
		conds = append(conds, fmt.Sprintf("id = $%d", len(args)))
	}
	if filter.Name != nil {
		args = append(args, "%"+*filter.Name+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if filter.CityID != nil {
		args = append(args, *filter.CityID)
		conds = append(conds, fmt.Sprintf("city_id = $%d", len(args)))
	}

	sql := fmt.Sprintf("SELECT %s FROM vaccination_points", vaccinationPointColumns)
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	sql += " ORDER BY id"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[model.VaccinationPoint])
}

// GetByID returns the point with that id, or nil when absent.
func (r *VaccinationPointRepository) GetByID(ctx context.Context, id int64) (*model.VaccinationPoint, error) {
	sql := fmt.Sprintf("SELECT %s FROM vaccination_points WHERE id = $1", vaccinationPointColumns)

	rows, err := r.db.Query(ctx, sql, id)
	if err != nil {
		return nil, err
	}

	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.VaccinationPoint])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &row, nil
}

// Create inserts a point and returns the assigned id.
func (r *VaccinationPointRepository) Create(ctx context.Context, params CreatePointParams) (int64, error) {
	sql := `INSERT INTO vaccination_points
		(city_id, name, schedules, full_address, neighborhood, zip_code, phone, email, website, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, sql,
		params.CityID,
		params.Name,
		params.Schedules,
		params.FullAddress,
		params.Neighborhood,
		params.ZipCode,
		params.Phone,
		params.Email,
		params.Website,
		params.Latitude,
		params.Longitude,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Update applies only the given column→value pairs to the row matching
// id and reports whether a row was affected.
func (r *VaccinationPointRepository) Update(ctx context.Context, id int64, fields map[string]any) (bool, error) {
	sql, args := buildUpdate("vaccination_points", id, fields)

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes the point matching id and reports whether a row was
// affected.
func (r *VaccinationPointRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM vaccination_points WHERE id = $1", id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
