package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vacinabr/vaccination-api/internal/errs"
)

func TestGenerateErrorCode(t *testing.T) {
	tests := []struct {
		table   string
		errType Code
		want    string
	}{
		{"countries", UniqueViolation, "COUNTRY_ALREADY_EXISTS"},
		{"cities", UniqueViolation, "CITY_ALREADY_EXISTS"},
		{"states", ForeignKeyViolation, "STATE_NOT_FOUND"},
		{"vaccination_points", CheckViolation, "VACCINATION_POINT_INVALID"},
		{"vaccines", NotNullViolation, "VACCINE_REQUIRED"},
		{"", UniqueViolation, "RECORD_ALREADY_EXISTS"},
	}

	for _, tt := range tests {
		if got := generateErrorCode(tt.table, tt.errType); got != tt.want {
			t.Errorf("generateErrorCode(%q, %v) = %q, want %q", tt.table, tt.errType, got, tt.want)
		}
	}
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	tests := []struct {
		constraint string
		table      string
		want       string
	}{
		{"countries_ibge_code_key", "countries", "ibge_code"},
		{"vaccination_point_vaccines_pair_key", "vaccination_point_vaccines", "pair"},
		{"countries_ibge_code_key", "", "code"},
		{"unique_users_email", "users", "email"},
		{"", "countries", ""},
		{"primary", "countries", ""},
	}

	for _, tt := range tests {
		if got := extractColumnForUniqueViolation(tt.constraint, tt.table); got != tt.want {
			t.Errorf("extractColumnForUniqueViolation(%q, %q) = %q, want %q", tt.constraint, tt.table, got, tt.want)
		}
	}
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		Message:        "duplicate key value violates unique constraint",
		TableName:      "countries",
		ConstraintName: "countries_ibge_code_key",
	}

	err := HandleError(pgErr)

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("HandleError returned %T, want *errs.HTTPError", err)
	}
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", httpErr.Status, http.StatusBadRequest)
	}
	if httpErr.Code != "COUNTRY_ALREADY_EXISTS" {
		t.Errorf("code = %q, want COUNTRY_ALREADY_EXISTS", httpErr.Code)
	}
	if !httpErr.Override {
		t.Error("unique violations should be safe to show verbatim")
	}
	if httpErr.Message != "A Country with this Ibge Code already exists" {
		t.Errorf("message = %q, want the full column named", httpErr.Message)
	}
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:  "ERROR",
		Code:      "23503",
		Message:   "insert or update violates foreign key constraint",
		TableName: "states",
	}

	err := HandleError(pgErr)

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("HandleError returned %T, want *errs.HTTPError", err)
	}
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", httpErr.Status, http.StatusBadRequest)
	}
	if httpErr.Code != "STATE_NOT_FOUND" {
		t.Errorf("code = %q, want STATE_NOT_FOUND", httpErr.Code)
	}
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:   "ERROR",
		Code:       "23502",
		Message:    "null value in column",
		TableName:  "vaccines",
		ColumnName: "name",
	}

	err := HandleError(pgErr)

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("HandleError returned %T, want *errs.HTTPError", err)
	}
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "name" {
		t.Errorf("field errors = %v, want one entry for name", httpErr.Errors)
	}
}

func TestHandleErrorNoRows(t *testing.T) {
	wrapped := fmt.Errorf("table:countries: %w", pgx.ErrNoRows)

	err := HandleError(wrapped)

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("HandleError returned %T, want *errs.HTTPError", err)
	}
	if httpErr.Status != http.StatusNotFound {
		t.Errorf("status = %d, want %d", httpErr.Status, http.StatusNotFound)
	}
	if httpErr.Message != "Country not found" {
		t.Errorf("message = %q, want %q", httpErr.Message, "Country not found")
	}
}

func TestHandleErrorPassthrough(t *testing.T) {
	original := errs.NewNotFoundError("Country with ID 7 not found", true, nil)

	if err := HandleError(original); err != original {
		t.Errorf("HandleError should pass *errs.HTTPError through unchanged, got %v", err)
	}
}

func TestHandleErrorUnknown(t *testing.T) {
	err := HandleError(errors.New("connection reset"))

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("HandleError returned %T, want *errs.HTTPError", err)
	}
	if httpErr.Status != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", httpErr.Status, http.StatusInternalServerError)
	}
}
