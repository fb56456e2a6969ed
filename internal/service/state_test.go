package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/vacinabr/vaccination-api/internal/lib/optional"
	"github.com/vacinabr/vaccination-api/internal/model"
	"github.com/vacinabr/vaccination-api/internal/repository"
)

// fakeStateStore is an in-memory StateStore.
type fakeStateStore struct {
	states []model.State
	nextID int64
}

func newFakeStateStore() *fakeStateStore {
	return &fakeStateStore{nextID: 1}
}

func (f *fakeStateStore) List(_ context.Context, _ repository.GeoFilter) ([]model.State, error) {
	return f.states, nil
}

func (f *fakeStateStore) GetByID(_ context.Context, id int64) (*model.State, error) {
	for i := range f.states {
		if f.states[i].ID == id {
			return &f.states[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStateStore) GetByIBGECode(_ context.Context, ibgeCode string) (*model.State, error) {
	for i := range f.states {
		if f.states[i].IBGECode != nil && *f.states[i].IBGECode == ibgeCode {
			return &f.states[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStateStore) Create(_ context.Context, countryID int64, name string, ibgeCode *string) (int64, error) {
	id := f.nextID
	f.nextID++
	f.states = append(f.states, model.State{ID: id, CountryID: countryID, Name: name, IBGECode: ibgeCode})
	return id, nil
}

func (f *fakeStateStore) Update(_ context.Context, id int64, _ map[string]any) (bool, error) {
	for i := range f.states {
		if f.states[i].ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStateStore) Delete(_ context.Context, id int64) (bool, error) {
	for i := range f.states {
		if f.states[i].ID == id {
			f.states = append(f.states[:i], f.states[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func newStateFixture(t *testing.T) (*StateService, *fakeCountryStore) {
	t.Helper()

	countries := newFakeCountryStore()
	if _, err := countries.Create(context.Background(), "Brasil", strPtr("1058")); err != nil {
		t.Fatalf("seeding country: %v", err)
	}

	return NewStateService(newFakeStateStore(), countries), countries
}

func TestStateCreate(t *testing.T) {
	svc, _ := newStateFixture(t)

	result, err := svc.Create(context.Background(), 1, "São Paulo", strPtr("35"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if result.Message != "State created successfully" {
		t.Errorf("message = %q", result.Message)
	}
}

func TestStateCreateParentNotFound(t *testing.T) {
	svc, _ := newStateFixture(t)

	_, err := svc.Create(context.Background(), 999, "São Paulo", nil)
	httpErr := assertHTTPError(t, err, http.StatusNotFound, "COUNTRY_NOT_FOUND")
	if httpErr.Message != "Country with ID 999 not found" {
		t.Errorf("message = %q", httpErr.Message)
	}
}

func TestStateCreateDuplicateIBGECode(t *testing.T) {
	svc, _ := newStateFixture(t)

	ctx := context.Background()
	if _, err := svc.Create(ctx, 1, "São Paulo", strPtr("35")); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	_, err := svc.Create(ctx, 1, "Sao Paulo", strPtr("35"))
	assertHTTPError(t, err, http.StatusBadRequest, "STATE_ALREADY_EXISTS")
}

func TestStateUpdateParentNotFound(t *testing.T) {
	svc, _ := newStateFixture(t)

	ctx := context.Background()
	if _, err := svc.Create(ctx, 1, "São Paulo", nil); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := svc.Update(ctx, 1, UpdateStateParams{
		CountryID: optional.Of(int64(42)),
	})
	assertHTTPError(t, err, http.StatusNotFound, "COUNTRY_NOT_FOUND")
}

func TestStateUpdateNotFound(t *testing.T) {
	svc, _ := newStateFixture(t)

	_, err := svc.Update(context.Background(), 7, UpdateStateParams{
		Name: optional.Of("Paraná"),
	})
	assertHTTPError(t, err, http.StatusNotFound, "STATE_NOT_FOUND")
}

func TestStateDeleteNotFound(t *testing.T) {
	svc, _ := newStateFixture(t)

	_, err := svc.Delete(context.Background(), 7)
	assertHTTPError(t, err, http.StatusNotFound, "STATE_NOT_FOUND")
}
