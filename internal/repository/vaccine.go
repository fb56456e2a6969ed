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

// VaccineFilter narrows a vaccine listing. Nil fields are ignored.
type VaccineFilter struct {
	ID   *int64
	Name *string
}

// VaccineRepository persists vaccines. Vaccines have no secondary
// unique code and no parent, so the lookup-table shape does not apply.
type VaccineRepository struct {
	db database.Querier
}

// NewVaccineRepository constructs the repository over db.
func NewVaccineRepository(db database.Querier) *VaccineRepository {
	return &VaccineRepository{db: db}
}

// List returns all vaccines matching the filter, ordered by id.
func (r *VaccineRepository) List(ctx context.Context, filter VaccineFilter) ([]model.Vaccine, error) {
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

	sql := "SELECT id, name, created_at FROM vaccines"
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	sql += " ORDER BY id"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Vaccine])
}

// GetByID returns the vaccine with that id, or nil when absent.
func (r *VaccineRepository) GetByID(ctx context.Context, id int64) (*model.Vaccine, error) {
	rows, err := r.db.Query(ctx, "SELECT id, name, created_at FROM vaccines WHERE id = $1", id)
	if err != nil {
		return nil, err
	}

	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Vaccine])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &row, nil
}

// Create inserts a vaccine and returns the assigned id.
func (r *VaccineRepository) Create(ctx context.Context, name string) (int64, error) {
	var id int64
	if err := r.db.QueryRow(ctx, "INSERT INTO vaccines (name) VALUES ($1) RETURNING id", name).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

// Update applies only the given column→value pairs to the row matching
// id and reports whether a row was affected.
func (r *VaccineRepository) Update(ctx context.Context, id int64, fields map[string]any) (bool, error) {
	sql, args := buildUpdate("vaccines", id, fields)

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes the vaccine matching id and reports whether a row was
// affected.
func (r *VaccineRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM vaccines WHERE id = $1", id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
