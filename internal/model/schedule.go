package model

import (
	"fmt"
	"time"
)

// Weekday names a day of the week in a schedule, lowercase English as
// stored ("monday" .. "sunday").
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists the valid weekday values in week order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Valid reports whether w is one of the seven known weekdays.
func (w Weekday) Valid() bool {
	for _, d := range Weekdays {
		if w == d {
			return true
		}
	}
	return false
}

// scheduleTimeLayout is the wire format for schedule times.
const scheduleTimeLayout = "15:04:05"

// Schedule is one opening-hours window of a vaccination point. Start
// and End are "HH:MM:SS" strings; End must not precede Start.
type Schedule struct {
	Start   string  `db:"start" json:"start"`
	End     string  `db:"end" json:"end"`
	Weekday Weekday `db:"weekday" json:"weekday"`
}

// Validate checks the time formats, the weekday, and the start/end
// ordering.
func (s Schedule) Validate() error {
	start, err := time.Parse(scheduleTimeLayout, s.Start)
	if err != nil {
		return fmt.Errorf("start must be a time in HH:MM:SS format")
	}

	end, err := time.Parse(scheduleTimeLayout, s.End)
	if err != nil {
		return fmt.Errorf("end must be a time in HH:MM:SS format")
	}

	if !s.Weekday.Valid() {
		return fmt.Errorf("weekday must be one of monday through sunday")
	}

	if end.Before(start) {
		return fmt.Errorf("end time must not be before start time")
	}

	return nil
}
