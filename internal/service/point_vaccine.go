package service

import (
	"context"

	"github.com/vacinabr/vaccination-api/internal/errs"
	"github.com/vacinabr/vaccination-api/internal/model"
)

// PointVaccineStore is the persistence surface the association service
// consumes.
type PointVaccineStore interface {
	GetByPointAndVaccine(ctx context.Context, pointID, vaccineID int64) (*model.VaccinationPointVaccine, error)
	Create(ctx context.Context, pointID, vaccineID int64) (int64, error)
	Delete(ctx context.Context, pointID, vaccineID int64) (bool, error)
	VaccinesByPoint(ctx context.Context, pointID *int64) ([]model.VaccinesByPointRow, error)
	PointsByVaccine(ctx context.Context, vaccineID *int64) ([]model.PointsByVaccineRow, error)
}

// pointGetter is the slice of the vaccination point store needed to
// verify one end of a link.
type pointGetter interface {
	GetByID(ctx context.Context, id int64) (*model.VaccinationPoint, error)
}

// vaccineGetter is the slice of the vaccine store needed to verify the
// other end of a link.
type vaccineGetter interface {
	GetByID(ctx context.Context, id int64) (*model.Vaccine, error)
}

// PointVaccineService manages the association between vaccination
// points and vaccines and serves the grouped association views.
type PointVaccineService struct {
	links    PointVaccineStore
	points   pointGetter
	vaccines vaccineGetter
}

// NewPointVaccineService constructs the service.
func NewPointVaccineService(links PointVaccineStore, points pointGetter, vaccines vaccineGetter) *PointVaccineService {
	return &PointVaccineService{links: links, points: points, vaccines: vaccines}
}

// Link registers a vaccine as available at a vaccination point. Both
// ends must exist and the pair must not be linked yet.
func (s *PointVaccineService) Link(ctx context.Context, pointID, vaccineID int64) (*CreateResult, error) {
	point, err := s.points.GetByID(ctx, pointID)
	if err != nil {
		return nil, err
	}
	if point == nil {
		return nil, notFoundError("Vaccination point", "VACCINATION_POINT", pointID)
	}

	vaccine, err := s.vaccines.GetByID(ctx, vaccineID)
	if err != nil {
		return nil, err
	}
	if vaccine == nil {
		return nil, notFoundError("Vaccine", "VACCINE", vaccineID)
	}

	existing, err := s.links.GetByPointAndVaccine(ctx, pointID, vaccineID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		code := "VACCINE_ALREADY_LINKED"
		return nil, errs.NewBadRequestError(
			"This vaccine is already registered at this vaccination point",
			true, &code, nil, nil,
		)
	}

	id, err := s.links.Create(ctx, pointID, vaccineID)
	if err != nil {
		return nil, err
	}

	return &CreateResult{ID: id, Message: "Vaccine added to vaccination point successfully"}, nil
}

// Unlink removes a vaccine from a vaccination point. Both ends must
// exist; an unlinked pair is a 404.
func (s *PointVaccineService) Unlink(ctx context.Context, pointID, vaccineID int64) (*MessageResult, error) {
	point, err := s.points.GetByID(ctx, pointID)
	if err != nil {
		return nil, err
	}
	if point == nil {
		return nil, notFoundError("Vaccination point", "VACCINATION_POINT", pointID)
	}

	vaccine, err := s.vaccines.GetByID(ctx, vaccineID)
	if err != nil {
		return nil, err
	}
	if vaccine == nil {
		return nil, notFoundError("Vaccine", "VACCINE", vaccineID)
	}

	deleted, err := s.links.Delete(ctx, pointID, vaccineID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		code := "VACCINE_NOT_LINKED"
		return nil, errs.NewNotFoundError(
			"This vaccine is not registered at this vaccination point",
			true, &code,
		)
	}

	return &MessageResult{Message: "Vaccine removed from vaccination point successfully"}, nil
}

// VaccinesForPoints returns the grouped "vaccines per point" view,
// optionally filtered to one vaccination point. Points without linked
// vaccines do not appear. Filtering on an unknown point is a 404, not
// an empty result.
func (s *PointVaccineService) VaccinesForPoints(ctx context.Context, pointID *int64) ([]model.PointVaccines, error) {
	if pointID != nil {
		point, err := s.points.GetByID(ctx, *pointID)
		if err != nil {
			return nil, err
		}
		if point == nil {
			return nil, notFoundError("Vaccination point", "VACCINATION_POINT", *pointID)
		}
	}

	rows, err := s.links.VaccinesByPoint(ctx, pointID)
	if err != nil {
		return nil, err
	}

	grouped := make([]model.PointVaccines, 0, len(rows))
	index := make(map[int64]int, len(rows))
	for _, row := range rows {
		i, ok := index[row.VaccinationPointID]
		if !ok {
			i = len(grouped)
			index[row.VaccinationPointID] = i
			grouped = append(grouped, model.PointVaccines{
				VaccinationPointID:   row.VaccinationPointID,
				VaccinationPointName: row.VaccinationPointName,
			})
		}
		grouped[i].Vaccines = append(grouped[i].Vaccines, model.VaccineSummary{
			VaccineID:   row.VaccineID,
			VaccineName: row.VaccineName,
		})
	}

	return grouped, nil
}

// PointsForVaccines returns the grouped "points per vaccine" view,
// optionally filtered to one vaccine. Vaccines without linked points do
// not appear. Filtering on an unknown vaccine is a 404.
func (s *PointVaccineService) PointsForVaccines(ctx context.Context, vaccineID *int64) ([]model.VaccinePoints, error) {
	if vaccineID != nil {
		vaccine, err := s.vaccines.GetByID(ctx, *vaccineID)
		if err != nil {
			return nil, err
		}
		if vaccine == nil {
			return nil, notFoundError("Vaccine", "VACCINE", *vaccineID)
		}
	}

	rows, err := s.links.PointsByVaccine(ctx, vaccineID)
	if err != nil {
		return nil, err
	}

	grouped := make([]model.VaccinePoints, 0, len(rows))
	index := make(map[int64]int, len(rows))
	for _, row := range rows {
		i, ok := index[row.VaccineID]
		if !ok {
			i = len(grouped)
			index[row.VaccineID] = i
			grouped = append(grouped, model.VaccinePoints{
				VaccineID:   row.VaccineID,
				VaccineName: row.VaccineName,
			})
		}
		grouped[i].VaccinationPoints = append(grouped[i].VaccinationPoints, model.PointSummary{
			VaccinationPointID:   row.VaccinationPointID,
			VaccinationPointName: row.VaccinationPointName,
			FullAddress:          row.FullAddress,
			Neighborhood:         row.Neighborhood,
			ZipCode:              row.ZipCode,
			Phone:                row.Phone,
			Email:                row.Email,
			Latitude:             row.Latitude,
			Longitude:            row.Longitude,
		})
	}

	return grouped, nil
}
