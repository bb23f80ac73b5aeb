package entities

import "sort"

// Schedule is one bookable showtime, already normalized: times are HH:MM
// 24-hour local wall-clock, Price is whole Rupiah.
type Schedule struct {
	ScheduleID         string `json:"schedule_id"`
	StartTime          string `json:"start_time"`
	EndTime            string `json:"end_time"`
	AuditoriumName     string `json:"auditorium_name"`
	AuditoriumTypeName string `json:"auditorium_type_name"`
	AuditoriumType     string `json:"auditorium_type,omitempty"`
	Price              int    `json:"price"`
	RemainingSeatCount int    `json:"remaining_seat_count"`
	TotalSeatCount     int    `json:"total_seat_count"`
}

// ScheduleIndex maps a YYYYMMDD date key to the showtimes found for that
// date. Dates that yielded nothing are absent, never stored empty.
type ScheduleIndex map[string][]Schedule

// Dates returns the index keys in ascending date order. YYYYMMDD keys sort
// lexicographically, so a plain string sort is the display order.
func (idx ScheduleIndex) Dates() []string {
	dates := make([]string, 0, len(idx))
	for d := range idx {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// Total counts schedules across all dates.
func (idx ScheduleIndex) Total() int {
	n := 0
	for _, schedules := range idx {
		n += len(schedules)
	}
	return n
}
