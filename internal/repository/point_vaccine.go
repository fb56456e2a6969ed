package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/vacinabr/vaccination-api/internal/database"
	"github.com/vacinabr/vaccination-api/internal/model"
)

// PointVaccineRepository persists the vaccination point ↔ vaccine
// association and answers the two join queries behind the denormalized
// views. The views use inner joins, so entities with zero links simply
// do not appear.
type PointVaccineRepository struct {
	db database.Querier
}

// NewPointVaccineRepository constructs the repository over db.
func NewPointVaccineRepository(db database.Querier) *PointVaccineRepository {
	return &PointVaccineRepository{db: db}
}

// GetByPointAndVaccine returns the link row for the pair, or nil when
// the pair is not linked.
func (r *PointVaccineRepository) GetByPointAndVaccine(ctx context.Context, pointID, vaccineID int64) (*model.VaccinationPointVaccine, error) {
	sql := `SELECT id, vaccination_point_id, vaccine_id, created_at
		FROM vaccination_point_vaccines
		WHERE vaccination_point_id = $1 AND vaccine_id = $2`

	rows, err := r.db.Query(ctx, sql, pointID, vaccineID)
	if err != nil {
		return nil, err
	}

	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.VaccinationPointVaccine])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &row, nil
}

// Create inserts a link row and returns the assigned id.
func (r *PointVaccineRepository) Create(ctx context.Context, pointID, vaccineID int64) (int64, error) {
	sql := `INSERT INTO vaccination_point_vaccines (vaccination_point_id, vaccine_id)
		VALUES ($1, $2) RETURNING id`

	var id int64
	if err := r.db.QueryRow(ctx, sql, pointID, vaccineID).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

// Delete removes the link row for the pair and reports whether a row
// was affected.
func (r *PointVaccineRepository) Delete(ctx context.Context, pointID, vaccineID int64) (bool, error) {
	sql := `DELETE FROM vaccination_point_vaccines
		WHERE vaccination_point_id = $1 AND vaccine_id = $2`

	tag, err := r.db.Exec(ctx, sql, pointID, vaccineID)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// VaccinesByPoint returns the flat join rows for the by-point view,
// optionally filtered to one vaccination point.
func (r *PointVaccineRepository) VaccinesByPoint(ctx context.Context, pointID *int64) ([]model.VaccinesByPointRow, error) {
	sql := `SELECT
			pv.vaccination_point_id,
			p.name AS vaccination_point_name,
			v.id AS vaccine_id,
			v.name AS vaccine_name
		FROM vaccination_point_vaccines pv
		JOIN vaccines v ON pv.vaccine_id = v.id
		JOIN vaccination_points p ON pv.vaccination_point_id = p.id`

	var args []any
	if pointID != nil {
		sql += " WHERE pv.vaccination_point_id = $1"
		args = append(args, *pointID)
	}
	sql += " ORDER BY pv.vaccination_point_id, pv.id"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[model.VaccinesByPointRow])
}

// PointsByVaccine returns the flat join rows for the by-vaccine view,
// optionally filtered to one vaccine.
func (r *PointVaccineRepository) PointsByVaccine(ctx context.Context, vaccineID *int64) ([]model.PointsByVaccineRow, error) {
	sql := `SELECT
			pv.vaccine_id,
			v.name AS vaccine_name,
			p.id AS vaccination_point_id,
			p.name AS vaccination_point_name,
			p.full_address,
			p.neighborhood,
			p.zip_code,
			p.phone,
			p.email,
			p.latitude,
			p.longitude
		FROM vaccination_point_vaccines pv
		JOIN vaccination_points p ON pv.vaccination_point_id = p.id
		JOIN vaccines v ON pv.vaccine_id = v.id`

	var args []any
	if vaccineID != nil {
		sql += " WHERE pv.vaccine_id = $1"
		args = append(args, *vaccineID)
	}
	sql += " ORDER BY pv.vaccine_id, pv.id"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[model.PointsByVaccineRow])
}
