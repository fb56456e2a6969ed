package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/vacinabr/vaccination-api/internal/model"
	"github.com/vacinabr/vaccination-api/internal/repository"
)

// fakeLinkStore is an in-memory PointVaccineStore. The join views are
// fed directly with flat rows.
type fakeLinkStore struct {
	links  []model.VaccinationPointVaccine
	nextID int64

	vaccinesByPoint []model.VaccinesByPointRow
	pointsByVaccine []model.PointsByVaccineRow
}

func newFakeLinkStore() *fakeLinkStore {
	return &fakeLinkStore{nextID: 1}
}

func (f *fakeLinkStore) GetByPointAndVaccine(_ context.Context, pointID, vaccineID int64) (*model.VaccinationPointVaccine, error) {
	for i := range f.links {
		if f.links[i].VaccinationPointID == pointID && f.links[i].VaccineID == vaccineID {
			return &f.links[i], nil
		}
	}
	return nil, nil
}

func (f *fakeLinkStore) Create(_ context.Context, pointID, vaccineID int64) (int64, error) {
	id := f.nextID
	f.nextID++
	f.links = append(f.links, model.VaccinationPointVaccine{
		ID:                 id,
		VaccinationPointID: pointID,
		VaccineID:          vaccineID,
	})
	return id, nil
}

func (f *fakeLinkStore) Delete(_ context.Context, pointID, vaccineID int64) (bool, error) {
	for i := range f.links {
		if f.links[i].VaccinationPointID == pointID && f.links[i].VaccineID == vaccineID {
			f.links = append(f.links[:i], f.links[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLinkStore) VaccinesByPoint(_ context.Context, _ *int64) ([]model.VaccinesByPointRow, error) {
	return f.vaccinesByPoint, nil
}

func (f *fakeLinkStore) PointsByVaccine(_ context.Context, _ *int64) ([]model.PointsByVaccineRow, error) {
	return f.pointsByVaccine, nil
}

// fakeVaccineGetter answers GetByID for a fixed set of vaccines.
type fakeVaccineGetter struct {
	vaccines map[int64]model.Vaccine
}

func (f *fakeVaccineGetter) GetByID(_ context.Context, id int64) (*model.Vaccine, error) {
	if v, ok := f.vaccines[id]; ok {
		return &v, nil
	}
	return nil, nil
}

func newLinkFixture() (*PointVaccineService, *fakeLinkStore) {
	store := newFakeLinkStore()

	points := newFakePointStore()
	_, _ = points.Create(context.Background(), repository.CreatePointParams{
		CityID: 1,
		Name:   "UBS Centro",
	})

	vaccines := &fakeVaccineGetter{vaccines: map[int64]model.Vaccine{
		1: {ID: 1, Name: "COVID-19"},
		2: {ID: 2, Name: "Influenza"},
	}}

	return NewPointVaccineService(store, points, vaccines), store
}

func TestLink(t *testing.T) {
	svc, _ := newLinkFixture()

	result, err := svc.Link(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("Link: %v", err)
	}
	if result.Message != "Vaccine added to vaccination point successfully" {
		t.Errorf("message = %q", result.Message)
	}
}

func TestLinkTwice(t *testing.T) {
	svc, _ := newLinkFixture()

	ctx := context.Background()
	if _, err := svc.Link(ctx, 1, 1); err != nil {
		t.Fatalf("first Link: %v", err)
	}

	_, err := svc.Link(ctx, 1, 1)
	httpErr := assertHTTPError(t, err, http.StatusBadRequest, "VACCINE_ALREADY_LINKED")
	if httpErr.Message != "This vaccine is already registered at this vaccination point" {
		t.Errorf("message = %q", httpErr.Message)
	}
}

func TestLinkPointNotFound(t *testing.T) {
	svc, _ := newLinkFixture()

	_, err := svc.Link(context.Background(), 99, 1)
	assertHTTPError(t, err, http.StatusNotFound, "VACCINATION_POINT_NOT_FOUND")
}

func TestLinkVaccineNotFound(t *testing.T) {
	svc, _ := newLinkFixture()

	_, err := svc.Link(context.Background(), 1, 99)
	assertHTTPError(t, err, http.StatusNotFound, "VACCINE_NOT_FOUND")
}

func TestUnlink(t *testing.T) {
	svc, _ := newLinkFixture()

	ctx := context.Background()
	if _, err := svc.Link(ctx, 1, 1); err != nil {
		t.Fatalf("Link: %v", err)
	}

	result, err := svc.Unlink(ctx, 1, 1)
	if err != nil {
		t.Fatalf("Unlink: %v", err)
	}
	if result.Message != "Vaccine removed from vaccination point successfully" {
		t.Errorf("message = %q", result.Message)
	}
}

func TestUnlinkPointNotFound(t *testing.T) {
	svc, _ := newLinkFixture()

	_, err := svc.Unlink(context.Background(), 99, 1)
	assertHTTPError(t, err, http.StatusNotFound, "VACCINATION_POINT_NOT_FOUND")
}

func TestUnlinkVaccineNotFound(t *testing.T) {
	svc, _ := newLinkFixture()

	_, err := svc.Unlink(context.Background(), 1, 99)
	assertHTTPError(t, err, http.StatusNotFound, "VACCINE_NOT_FOUND")
}

func TestUnlinkNotLinked(t *testing.T) {
	svc, _ := newLinkFixture()

	_, err := svc.Unlink(context.Background(), 1, 2)
	httpErr := assertHTTPError(t, err, http.StatusNotFound, "VACCINE_NOT_LINKED")
	if httpErr.Message != "This vaccine is not registered at this vaccination point" {
		t.Errorf("message = %q", httpErr.Message)
	}
}

func TestVaccinesForPointsGrouping(t *testing.T) {
	svc, store := newLinkFixture()

	store.vaccinesByPoint = []model.VaccinesByPointRow{
		{VaccinationPointID: 1, VaccinationPointName: "UBS Centro", VaccineID: 1, VaccineName: "COVID-19"},
		{VaccinationPointID: 1, VaccinationPointName: "UBS Centro", VaccineID: 2, VaccineName: "Influenza"},
		{VaccinationPointID: 2, VaccinationPointName: "Posto Vila Mariana", VaccineID: 1, VaccineName: "COVID-19"},
	}

	grouped, err := svc.VaccinesForPoints(context.Background(), nil)
	if err != nil {
		t.Fatalf("VaccinesForPoints: %v", err)
	}

	if len(grouped) != 2 {
		t.Fatalf("got %d groups, want 2", len(grouped))
	}
	if grouped[0].VaccinationPointID != 1 || len(grouped[0].Vaccines) != 2 {
		t.Errorf("group 0 = %+v", grouped[0])
	}
	if grouped[0].Vaccines[0].VaccineName != "COVID-19" || grouped[0].Vaccines[1].VaccineName != "Influenza" {
		t.Errorf("group 0 vaccines out of order: %+v", grouped[0].Vaccines)
	}
	if grouped[1].VaccinationPointID != 2 || len(grouped[1].Vaccines) != 1 {
		t.Errorf("group 1 = %+v", grouped[1])
	}
}

func TestVaccinesForPointsEmpty(t *testing.T) {
	svc, _ := newLinkFixture()

	grouped, err := svc.VaccinesForPoints(context.Background(), nil)
	if err != nil {
		t.Fatalf("VaccinesForPoints: %v", err)
	}
	if len(grouped) != 0 {
		t.Errorf("got %d groups, want 0", len(grouped))
	}
}

func TestVaccinesForPointsUnknownPoint(t *testing.T) {
	svc, _ := newLinkFixture()

	pointID := int64(99)
	_, err := svc.VaccinesForPoints(context.Background(), &pointID)
	assertHTTPError(t, err, http.StatusNotFound, "VACCINATION_POINT_NOT_FOUND")
}

func TestPointsForVaccinesUnknownVaccine(t *testing.T) {
	svc, _ := newLinkFixture()

	vaccineID := int64(99)
	_, err := svc.PointsForVaccines(context.Background(), &vaccineID)
	assertHTTPError(t, err, http.StatusNotFound, "VACCINE_NOT_FOUND")
}

func TestPointsForVaccinesGrouping(t *testing.T) {
	svc, store := newLinkFixture()

	addr := "Av. Anchieta, 200"
	store.pointsByVaccine = []model.PointsByVaccineRow{
		{VaccineID: 1, VaccineName: "COVID-19", VaccinationPointID: 1, VaccinationPointName: "UBS Centro", FullAddress: &addr},
		{VaccineID: 1, VaccineName: "COVID-19", VaccinationPointID: 2, VaccinationPointName: "Posto Vila Mariana"},
		{VaccineID: 2, VaccineName: "Influenza", VaccinationPointID: 1, VaccinationPointName: "UBS Centro", FullAddress: &addr},
	}

	grouped, err := svc.PointsForVaccines(context.Background(), nil)
	if err != nil {
		t.Fatalf("PointsForVaccines: %v", err)
	}

	if len(grouped) != 2 {
		t.Fatalf("got %d groups, want 2", len(grouped))
	}
	if grouped[0].VaccineName != "COVID-19" || len(grouped[0].VaccinationPoints) != 2 {
		t.Errorf("group 0 = %+v", grouped[0])
	}
	if grouped[0].VaccinationPoints[0].FullAddress == nil || *grouped[0].VaccinationPoints[0].FullAddress != addr {
		t.Errorf("point summary lost the address: %+v", grouped[0].VaccinationPoints[0])
	}
	if grouped[1].VaccineName != "Influenza" || len(grouped[1].VaccinationPoints) != 1 {
		t.Errorf("group 1 = %+v", grouped[1])
	}
}
