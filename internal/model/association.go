package model

// VaccinesByPointRow is one flat row of the join between the
// association table, vaccination_points, and vaccines.
type VaccinesByPointRow struct {
	VaccinationPointID   int64  `db:"vaccination_point_id" json:"vaccination_point_id"`
	VaccinationPointName string `db:"vaccination_point_name" json:"vaccination_point_name"`
	VaccineID            int64  `db:"vaccine_id" json:"vaccine_id"`
	VaccineName          string `db:"vaccine_name" json:"vaccine_name"`
}

// PointsByVaccineRow is the symmetric flat join row, carrying the point
// summary fields used in the by-vaccine view.
type PointsByVaccineRow struct {
	VaccineID            int64    `db:"vaccine_id" json:"vaccine_id"`
	VaccineName          string   `db:"vaccine_name" json:"vaccine_name"`
	VaccinationPointID   int64    `db:"vaccination_point_id" json:"vaccination_point_id"`
	VaccinationPointName string   `db:"vaccination_point_name" json:"vaccination_point_name"`
	FullAddress          *string  `db:"full_address" json:"full_address"`
	Neighborhood         *string  `db:"neighborhood" json:"neighborhood"`
	ZipCode              *string  `db:"zip_code" json:"zip_code"`
	Phone                *string  `db:"phone" json:"phone"`
	Email                *string  `db:"email" json:"email"`
	Latitude             *float64 `db:"latitude" json:"latitude"`
	Longitude            *float64 `db:"longitude" json:"longitude"`
}

// VaccineSummary is one vaccine entry inside a grouped by-point record.
type VaccineSummary struct {
	VaccineID   int64  `json:"vaccine_id"`
	VaccineName string `json:"vaccine_name"`
}

// PointVaccines is the grouped "vaccines for a point" record: one per
// vaccination point with at least one linked vaccine.
type PointVaccines struct {
	VaccinationPointID   int64            `json:"vaccination_point_id"`
	VaccinationPointName string           `json:"vaccination_point_name"`
	Vaccines             []VaccineSummary `json:"vaccines"`
}

// PointSummary is one vaccination point entry inside a grouped
// by-vaccine record.
type PointSummary struct {
	VaccinationPointID   int64    `json:"vaccination_point_id"`
	VaccinationPointName string   `json:"vaccination_point_name"`
	FullAddress          *string  `json:"full_address"`
	Neighborhood         *string  `json:"neighborhood"`
	ZipCode              *string  `json:"zip_code"`
	Phone                *string  `json:"phone"`
	Email                *string  `json:"email"`
	Latitude             *float64 `json:"latitude"`
	Longitude            *float64 `json:"longitude"`
}

// VaccinePoints is the grouped "points for a vaccine" record: one per
// vaccine with at least one linked vaccination point.
type VaccinePoints struct {
	VaccineID         int64          `json:"vaccine_id"`
	VaccineName       string         `json:"vaccine_name"`
	VaccinationPoints []PointSummary `json:"vaccination_points"`
}
