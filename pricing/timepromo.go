package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Showtimes at or after 16:00 get the evening rate, earlier ones the
// matinee rate.
const (
	dayRate       = 0.25
	nightRate     = 0.15
	cutoffMinutes = 16 * 60
)

// TimePromo is the result of the time-of-day discount, all in whole Rupiah.
type TimePromo struct {
	Normal int `json:"normal"`
	Promo  int `json:"promo"`
	Saved  int `json:"saved"`
}

// ComputeTimeBasedPromo prices ticketCount tickets for a showtime starting
// at startTime ("HH:MM", 24-hour). This is the seat-map/order path model:
// a per-total percentage keyed to time of day, separate from the paired
// buy-2 engine.
func ComputeTimeBasedPromo(unitPrice, ticketCount int, startTime string) (TimePromo, error) {
	minutes, err := MinutesSinceMidnight(startTime)
	if err != nil {
		return TimePromo{}, err
	}

	rate := nightRate
	if minutes < cutoffMinutes {
		rate = dayRate
	}

	normal := unitPrice * ticketCount
	promo := int(math.Round(float64(normal) * (1 - rate)))
	return TimePromo{
		Normal: normal,
		Promo:  promo,
		Saved:  normal - promo,
	}, nil
}

// MinutesSinceMidnight parses "HH:MM" wall-clock time.
func MinutesSinceMidnight(hhmm string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(hhmm), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", hhmm)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", hhmm)
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", hhmm)
	}
	if hours < 0 || hours > 23 || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("time %q out of range", hhmm)
	}
	return hours*60 + mins, nil
}
