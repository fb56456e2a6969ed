package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/vacinabr/vaccination-api/internal/database"
)

// GeoFilter narrows a lookup-table listing. Nil fields are ignored; ID
// and IBGECode match exactly, Name matches case-insensitive substrings.
type GeoFilter struct {
	ID       *int64
	Name     *string
	IBGECode *string
}

// geoRepository is the shared implementation for the lookup-table
// entities (countries, states, cities). They differ only in table name,
// column list, and the presence of a parent foreign key, so one generic
// repository serves all three.
type geoRepository[T any] struct {
	db           database.Querier
	table        string
	columns      string
	parentColumn string // "" for countries
}

// List returns all rows matching the filter, ordered by id. An empty
// result is not an error.
func (r *geoRepository[T]) List(ctx context.Context, filter GeoFilter) ([]T, error) {
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
	if filter.IBGECode != nil {
		args = append(args, *filter.IBGECode)
		conds = append(conds, fmt.Sprintf("ibge_code = $%d", len(args)))
	}

	sql := fmt.Sprintf("SELECT %s FROM %s", r.columns, r.table)
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	sql += " ORDER BY id"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

// GetByID returns the row with that id, or nil when absent.
func (r *geoRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	sql := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", r.columns, r.table)

	rows, err := r.db.Query(ctx, sql, id)
	if err != nil {
		return nil, err
	}

	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &row, nil
}

// GetByIBGECode returns the row with that IBGE code, or nil when absent.
func (r *geoRepository[T]) GetByIBGECode(ctx context.Context, ibgeCode string) (*T, error) {
	sql := fmt.Sprintf("SELECT %s FROM %s WHERE ibge_code = $1", r.columns, r.table)

	rows, err := r.db.Query(ctx, sql, ibgeCode)
	if err != nil {
		return nil, err
	}

	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &row, nil
}

// create inserts a row and returns the assigned id. parentID is ignored
// for tables without a parent column.
func (r *geoRepository[T]) create(ctx context.Context, name string, ibgeCode *string, parentID *int64) (int64, error) {
	var (
		sql  string
		args []any
	)

	if r.parentColumn != "" {
		sql = fmt.Sprintf("INSERT INTO %s (%s, name, ibge_code) VALUES ($1, $2, $3) RETURNING id", r.table, r.parentColumn)
		args = []any{parentID, name, ibgeCode}
	} else {
		sql = fmt.Sprintf("INSERT INTO %s (name, ibge_code) VALUES ($1, $2) RETURNING id", r.table)
		args = []any{name, ibgeCode}
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

// Update applies only the given column→value pairs to the row matching
// id and reports whether a row was affected.
func (r *geoRepository[T]) Update(ctx context.Context, id int64, fields map[string]any) (bool, error) {
	sql, args := buildUpdate(r.table, id, fields)

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes the row matching id and reports whether a row was
// affected.
func (r *geoRepository[T]) Delete(ctx context.Context, id int64) (bool, error) {
	sql := fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.table)

	tag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
