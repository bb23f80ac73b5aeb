package seatmap

import (
	"fmt"
	"sort"

	"github.com/idamrohim/cgv-promo/entities"
)

// Normalize flattens the raw seats payload into Seat snapshots. Row names
// missing from the payload fall back to A, B, C… by position; a seat with
// no explicit availability flag is treated as unavailable. basePrice fills
// in for seats without their own price.
func Normalize(payload *entities.SeatPayload, basePrice int) []entities.Seat {
	if payload == nil {
		return nil
	}
	var seats []entities.Seat
	for rowIdx, row := range payload.Rows {
		rowName := rowLabel(row, rowIdx)
		for _, raw := range row.Seats {
			seat := entities.Seat{
				ID:          raw.ID,
				RowName:     rowName,
				Number:      raw.Number,
				IsSeat:      raw.IsSeat == nil || *raw.IsSeat,
				IsAvailable: raw.IsAvailable != nil && *raw.IsAvailable,
				Grade:       firstNonEmpty(raw.Grade, raw.Type, "Regular"),
				Color:       firstNonEmpty(raw.Color, "#3b82f6"),
				Price:       raw.Price,
			}
			if seat.ID == "" {
				seat.ID = raw.SeatID
			}
			if seat.ID == "" {
				seat.ID = fmt.Sprintf("%s-%d", rowName, raw.Number)
			}
			if seat.Price == 0 {
				seat.Price = basePrice
			}
			seats = append(seats, seat)
		}
	}
	return seats
}

func rowLabel(row entities.SeatRowPayload, idx int) string {
	if name := firstNonEmpty(row.RowName, row.Name, row.Label); name != "" {
		return name
	}
	return string(rune('A' + idx))
}

// Row is one display row: seats already sorted by number.
type Row struct {
	Name  string
	Seats []entities.Seat
}

// GroupByRow buckets seats for display: rows in lexicographic order, seats
// within a row in ascending number order.
func GroupByRow(seats []entities.Seat) []Row {
	byRow := make(map[string][]entities.Seat)
	for _, seat := range seats {
		name := seat.RowName
		if name == "" {
			name = "X"
		}
		byRow[name] = append(byRow[name], seat)
	}

	names := make([]string, 0, len(byRow))
	for name := range byRow {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]Row, 0, len(names))
	for _, name := range names {
		rowSeats := byRow[name]
		sort.SliceStable(rowSeats, func(i, j int) bool {
			return rowSeats[i].Number < rowSeats[j].Number
		})
		rows = append(rows, Row{Name: name, Seats: rowSeats})
	}
	return rows
}

// CountAvailable tallies sittable, open seats.
func CountAvailable(seats []entities.Seat) int {
	n := 0
	for _, seat := range seats {
		if seat.IsSeat && seat.IsAvailable {
			n++
		}
	}
	return n
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
