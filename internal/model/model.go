// Package model declares the persisted entities and the row/response
// shapes derived from them.
//
// Struct fields carry db tags for pgx row mapping
// (pgx.RowToStructByName) and json tags for API responses.
package model

import "time"

// Country is a top-level geographic entity. The IBGE code is an
// optional secondary unique key.
type Country struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	IBGECode  *string   `db:"ibge_code" json:"ibge_code"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// State belongs to a Country. Deleting a country cascades to its states.
type State struct {
	ID        int64     `db:"id" json:"id"`
	CountryID int64     `db:"country_id" json:"country_id"`
	Name      string    `db:"name" json:"name"`
	IBGECode  *string   `db:"ibge_code" json:"ibge_code"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// City belongs to a State.
type City struct {
	ID        int64     `db:"id" json:"id"`
	StateID   int64     `db:"state_id" json:"state_id"`
	Name      string    `db:"name" json:"name"`
	IBGECode  *string   `db:"ibge_code" json:"ibge_code"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// VaccinationPoint is a site where vaccines are administered. Only name
// and city are mandatory; contact data, coordinates, and opening hours
// are optional.
type VaccinationPoint struct {
	ID           int64      `db:"id" json:"id"`
	CityID       int64      `db:"city_id" json:"city_id"`
	Name         string     `db:"name" json:"name"`
	Schedules    []Schedule `db:"schedules" json:"schedules"`
	FullAddress  *string    `db:"full_address" json:"full_address"`
	Neighborhood *string    `db:"neighborhood" json:"neighborhood"`
	ZipCode      *string    `db:"zip_code" json:"zip_code"`
	Phone        *string    `db:"phone" json:"phone"`
	Email        *string    `db:"email" json:"email"`
	Website      *string    `db:"website" json:"website"`
	Latitude     *float64   `db:"latitude" json:"latitude"`
	Longitude    *float64   `db:"longitude" json:"longitude"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// Vaccine is a vaccine type that can be offered at vaccination points.
type Vaccine struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// VaccinationPointVaccine links one vaccination point and one vaccine.
// The (vaccination_point_id, vaccine_id) pair is unique.
type VaccinationPointVaccine struct {
	ID                 int64     `db:"id" json:"id"`
	VaccinationPointID int64     `db:"vaccination_point_id" json:"vaccination_point_id"`
	VaccineID          int64     `db:"vaccine_id" json:"vaccine_id"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}
