package entities

import "strconv"

// Seat is a normalized, read-only snapshot of one position in the auditorium.
// IsSeat distinguishes sittable positions from aisle/gap placeholders.
type Seat struct {
	ID          string `json:"id"`
	RowName     string `json:"row_name"`
	Number      int    `json:"number"`
	IsSeat      bool   `json:"is_seat"`
	IsAvailable bool   `json:"is_available"`
	Grade       string `json:"grade"`
	Color       string `json:"color"`
	Price       int    `json:"price"`
}

// Label is the human seat name, e.g. "A12".
func (s *Seat) Label() string {
	return s.RowName + strconv.Itoa(s.Number)
}
