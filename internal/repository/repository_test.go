package repository

import (
	"reflect"
	"testing"
)

func TestBuildUpdate(t *testing.T) {
	sql, args := buildUpdate("countries", 7, map[string]any{
		"name":      "Brasil",
		"ibge_code": "1058",
	})

	// Columns are sorted, so the statement is deterministic.
	wantSQL := "UPDATE countries SET ibge_code = $1, name = $2 WHERE id = $3"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}

	wantArgs := []any{"1058", "Brasil", int64(7)}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("args = %v, want %v", args, wantArgs)
	}
}

func TestBuildUpdateNullColumn(t *testing.T) {
	sql, args := buildUpdate("countries", 3, map[string]any{
		"ibge_code": nil,
	})

	wantSQL := "UPDATE countries SET ibge_code = $1 WHERE id = $2"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
	if args[0] != nil {
		t.Errorf("args[0] = %v, want nil", args[0])
	}
	if args[1] != int64(3) {
		t.Errorf("args[1] = %v, want 3", args[1])
	}
}

func TestBuildUpdateSingleField(t *testing.T) {
	sql, _ := buildUpdate("vaccines", 1, map[string]any{"name": "Influenza"})

	wantSQL := "UPDATE vaccines SET name = $1 WHERE id = $2"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
}
