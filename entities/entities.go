package entities

import (
	"encoding/json"
	"time"
)

// Envelope is the JSON wrapper every upstream endpoint returns.
// Success means StatusCode == 200; Data is decoded per endpoint.
type Envelope struct {
	StatusCode int             `json:"status_code"`
	Message    string          `json:"message,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
}

func (e *Envelope) OK() bool {
	return e.StatusCode == 200
}

// SchedulePayload mirrors the nested schedules response:
// cinemas -> schedule-type groups -> individual showtimes. Field names vary
// between deployments, so every value carries its observed aliases and the
// scanner performs one normalization pass over them.
type SchedulePayload struct {
	Cinemas []CinemaGroup `json:"cinemas"`
}

type CinemaGroup struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	CinemaName    string          `json:"cinema_name"`
	ScheduleTypes []ScheduleGroup `json:"schedule_types"`
}

type ScheduleGroup struct {
	Name               string        `json:"name"`
	Price              string        `json:"price"`
	AuditoriumName     string        `json:"auditorium_name"`
	AuditoriumTypeName string        `json:"auditorium_type_name"`
	AuditoriumTypeID   string        `json:"auditorium_type_id"`
	Schedules          []RawShowtime `json:"schedules"`
}

type RawShowtime struct {
	ScheduleID         string `json:"schedule_id"`
	ID                 string `json:"id"`
	StartTime          string `json:"start_time"`
	Time               string `json:"time"`
	EndTime            string `json:"end_time"`
	RemainingSeatCount int    `json:"remaining_seat_count"`
	TotalSeatCount     int    `json:"total_seat_count"`
}

// SeatPayload mirrors the seats response: an array of row groups, each with
// a name (under one of several keys) and loosely shaped seat descriptors.
type SeatPayload struct {
	Rows []SeatRowPayload `json:"rows"`
}

type SeatRowPayload struct {
	RowName string    `json:"row_name"`
	Name    string    `json:"name"`
	Label   string    `json:"label"`
	Seats   []RawSeat `json:"seats"`
}

type RawSeat struct {
	ID          string `json:"id"`
	SeatID      string `json:"seat_id"`
	Number      int    `json:"number"`
	IsSeat      *bool  `json:"is_seat"`
	IsAvailable *bool  `json:"is_available"`
	Grade       string `json:"grade"`
	Type        string `json:"type"`
	Color       string `json:"color"`
	Price       int    `json:"price"`
}

// ScanLogEntry is one per-scan summary row written through the persistence sink.
type ScanLogEntry struct {
	MovieID    string    `json:"movieId"`
	LocationID string    `json:"locationId"`
	Status     string    `json:"status"`
	DatesFound int       `json:"datesFound"`
	Schedules  int       `json:"schedules"`
	ScannedAt  time.Time `json:"scannedAt"`
}
