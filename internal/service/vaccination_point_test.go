package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/vacinabr/vaccination-api/internal/lib/optional"
	"github.com/vacinabr/vaccination-api/internal/model"
	"github.com/vacinabr/vaccination-api/internal/repository"
)

// fakePointStore is an in-memory VaccinationPointStore.
type fakePointStore struct {
	points []model.VaccinationPoint
	nextID int64

	lastUpdate map[string]any
}

func newFakePointStore() *fakePointStore {
	return &fakePointStore{nextID: 1}
}

func (f *fakePointStore) List(_ context.Context, _ repository.PointFilter) ([]model.VaccinationPoint, error) {
	return f.points, nil
}

func (f *fakePointStore) GetByID(_ context.Context, id int64) (*model.VaccinationPoint, error) {
	for i := range f.points {
		if f.points[i].ID == id {
			return &f.points[i], nil
		}
	}
	return nil, nil
}

func (f *fakePointStore) Create(_ context.Context, params repository.CreatePointParams) (int64, error) {
	id := f.nextID
	f.nextID++
	f.points = append(f.points, model.VaccinationPoint{
		ID:        id,
		CityID:    params.CityID,
		Name:      params.Name,
		Schedules: params.Schedules,
		Latitude:  params.Latitude,
		Longitude: params.Longitude,
	})
	return id, nil
}

func (f *fakePointStore) Update(_ context.Context, id int64, fields map[string]any) (bool, error) {
	f.lastUpdate = fields
	for i := range f.points {
		if f.points[i].ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePointStore) Delete(_ context.Context, id int64) (bool, error) {
	for i := range f.points {
		if f.points[i].ID == id {
			f.points = append(f.points[:i], f.points[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// fakeCityGetter answers GetByID for a fixed set of cities.
type fakeCityGetter struct {
	cities map[int64]model.City
}

func (f *fakeCityGetter) GetByID(_ context.Context, id int64) (*model.City, error) {
	if city, ok := f.cities[id]; ok {
		return &city, nil
	}
	return nil, nil
}

func newPointFixture() (*VaccinationPointService, *fakePointStore) {
	store := newFakePointStore()
	cities := &fakeCityGetter{cities: map[int64]model.City{
		1: {ID: 1, Name: "Campinas", StateID: 1},
	}}
	return NewVaccinationPointService(store, cities), store
}

func floatPtr(f float64) *float64 { return &f }

func TestPointCreate(t *testing.T) {
	svc, store := newPointFixture()

	result, err := svc.Create(context.Background(), repository.CreatePointParams{
		CityID: 1,
		Name:   "UBS Centro",
		Schedules: []model.Schedule{
			{Start: "08:00:00", End: "17:00:00", Weekday: model.Monday},
		},
		Latitude:  floatPtr(-22.9056),
		Longitude: floatPtr(-47.0608),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if result.Message != "Vaccination point created successfully" {
		t.Errorf("message = %q", result.Message)
	}

	point, _ := store.GetByID(context.Background(), result.ID)
	if point == nil {
		t.Fatal("point not stored")
	}
	if len(point.Schedules) != 1 || point.Schedules[0].Weekday != model.Monday {
		t.Errorf("schedules = %v", point.Schedules)
	}
	if point.Latitude == nil || *point.Latitude != -22.9056 {
		t.Errorf("latitude = %v", point.Latitude)
	}
}

func TestPointCreateCityNotFound(t *testing.T) {
	svc, _ := newPointFixture()

	_, err := svc.Create(context.Background(), repository.CreatePointParams{
		CityID: 404,
		Name:   "UBS Centro",
	})
	assertHTTPError(t, err, http.StatusNotFound, "CITY_NOT_FOUND")
}

func TestPointUpdateFieldMapping(t *testing.T) {
	svc, store := newPointFixture()

	ctx := context.Background()
	if _, err := svc.Create(ctx, repository.CreatePointParams{CityID: 1, Name: "UBS Centro"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := svc.Update(ctx, 1, UpdatePointParams{
		Name:        optional.Of("UBS Centro Campinas"),
		Phone:       optional.Null[string](),
		FullAddress: optional.Of("Av. Anchieta, 200"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if got := store.lastUpdate["name"]; got != "UBS Centro Campinas" {
		t.Errorf("name = %v", got)
	}
	if value, ok := store.lastUpdate["phone"]; !ok || value != nil {
		t.Errorf("phone = %v, want explicit nil", value)
	}
	if got := store.lastUpdate["full_address"]; got != "Av. Anchieta, 200" {
		t.Errorf("full_address = %v", got)
	}
	// Unset fields must not leak into the update.
	if _, ok := store.lastUpdate["email"]; ok {
		t.Error("email should not be in the update map")
	}
}

func TestPointUpdateEmpty(t *testing.T) {
	svc, _ := newPointFixture()

	ctx := context.Background()
	if _, err := svc.Create(ctx, repository.CreatePointParams{CityID: 1, Name: "UBS Centro"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := svc.Update(ctx, 1, UpdatePointParams{})
	assertHTTPError(t, err, http.StatusBadRequest, "EMPTY_UPDATE")
}

func TestPointUpdateCityNotFound(t *testing.T) {
	svc, _ := newPointFixture()

	ctx := context.Background()
	if _, err := svc.Create(ctx, repository.CreatePointParams{CityID: 1, Name: "UBS Centro"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := svc.Update(ctx, 1, UpdatePointParams{
		CityID: optional.Of(int64(404)),
	})
	assertHTTPError(t, err, http.StatusNotFound, "CITY_NOT_FOUND")
}

func TestPointDeleteNotFound(t *testing.T) {
	svc, _ := newPointFixture()

	_, err := svc.Delete(context.Background(), 9)
	assertHTTPError(t, err, http.StatusNotFound, "VACCINATION_POINT_NOT_FOUND")
}
