package scanner

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/idamrohim/cgv-promo/client"
	"github.com/idamrohim/cgv-promo/constant"
	"github.com/idamrohim/cgv-promo/debuglog"
	"github.com/idamrohim/cgv-promo/entities"
	"github.com/idamrohim/cgv-promo/team"
)

// Scanner probes the schedules endpoint across a window of dates and builds
// a per-date index of showtimes. Any single date failing — transport,
// decode, upstream envelope — just leaves that date out of the index.
type Scanner struct {
	Client    client.API
	Sink      debuglog.Sink
	Now       func() time.Time
	Completed *int64 // optional progress counter, incremented per settled date
}

func New(api client.API, sink debuglog.Sink) *Scanner {
	if sink == nil {
		sink = debuglog.Nop{}
	}
	return &Scanner{Client: api, Sink: sink, Now: time.Now}
}

// Playing titles are probed 11 days out (today inclusive), upcoming ones 21:
// an unreleased movie's first schedules can sit further in the future.
func scanDays(status entities.MovieStatus) int {
	if status == entities.StatusUpcoming {
		return 20
	}
	return 10
}

type dateResult struct {
	date      string
	schedules []entities.Schedule
}

// ScanSchedules fans out one request per candidate date — all issued before
// any is awaited — and aggregates the settled results into a ScheduleIndex.
// The index depends only on the responses, never on arrival order.
func (s *Scanner) ScanSchedules(ctx context.Context, movieID, locationID string, status entities.MovieStatus) entities.ScheduleIndex {
	dates := s.DateWindow(status)
	s.Sink.Log("SCAN_START", map[string]any{
		"movieId":    movieID,
		"locationId": locationID,
		"status":     string(status),
		"dates":      len(dates),
	})

	results := team.FanOut(dates, func(date string) (dateResult, error) {
		schedules := s.fetchDate(ctx, movieID, locationID, date)
		if s.Completed != nil {
			atomic.AddInt64(s.Completed, 1)
		}
		if len(schedules) == 0 {
			return dateResult{}, errNoSchedules
		}
		return dateResult{date: date, schedules: schedules}, nil
	})

	index := make(entities.ScheduleIndex, len(results))
	for _, res := range results {
		index[res.date] = res.schedules
	}

	s.Sink.Log("SCAN_COMPLETE", map[string]any{
		"totalDatesWithSchedules": len(index),
		"dates":                   index.Dates(),
	})
	return index
}

// DateWindow lists the candidate date keys starting today.
func (s *Scanner) DateWindow(status entities.MovieStatus) []string {
	now := s.Now
	if now == nil {
		now = time.Now
	}
	today := now()
	days := scanDays(status)
	dates := make([]string, 0, days+1)
	for i := 0; i <= days; i++ {
		dates = append(dates, today.AddDate(0, 0, i).Format(constant.DATE_KEY_LAYOUT))
	}
	return dates
}

func (s *Scanner) fetchDate(ctx context.Context, movieID, locationID, date string) []entities.Schedule {
	payload, err := s.Client.GetSchedules(ctx, movieID, locationID, date)
	if err != nil {
		s.Sink.Log("SCAN_DATE_ERROR", map[string]any{"date": date, "error": err.Error()})
		return nil
	}
	schedules := NormalizeSchedules(payload)
	s.Sink.Log("SCHEDULES_FOUND", map[string]any{"date": date, "count": len(schedules)})
	return schedules
}

var errNoSchedules = &noSchedulesError{}

type noSchedulesError struct{}

func (*noSchedulesError) Error() string { return "no schedules for date" }

// NormalizeSchedules flattens the nested cinemas -> schedule-type groups ->
// showtimes payload into plain Schedules. Every showtime inherits its
// group's extracted base price and auditorium naming; alias field names are
// resolved here and nowhere else.
func NormalizeSchedules(payload *entities.SchedulePayload) []entities.Schedule {
	if payload == nil {
		return nil
	}
	var schedules []entities.Schedule
	for _, cinema := range payload.Cinemas {
		cinemaName := firstNonEmpty(cinema.Name, cinema.CinemaName)
		for _, group := range cinema.ScheduleTypes {
			basePrice := ExtractPrice(group.Price)
			for _, raw := range group.Schedules {
				schedules = append(schedules, entities.Schedule{
					ScheduleID:         firstNonEmpty(raw.ScheduleID, raw.ID),
					StartTime:          firstNonEmpty(raw.StartTime, raw.Time),
					EndTime:            raw.EndTime,
					AuditoriumName:     firstNonEmpty(group.AuditoriumName, cinemaName),
					AuditoriumTypeName: firstNonEmpty(group.AuditoriumTypeName, group.Name, "Regular"),
					AuditoriumType:     group.AuditoriumTypeID,
					Price:              basePrice,
					RemainingSeatCount: raw.RemainingSeatCount,
					TotalSeatCount:     raw.TotalSeatCount,
				})
			}
		}
	}
	return schedules
}

var priceRe = regexp.MustCompile(`[0-9.,]+`)

// ExtractPrice pulls the amount out of a human price label like
// "From Rp40.000". It takes the first digit run in the string; a label with
// a leading unrelated number would misparse, but upstream labels have never
// carried one.
func ExtractPrice(label string) int {
	match := priceRe.FindString(label)
	if match == "" {
		return 0
	}
	match = strings.ReplaceAll(match, ".", "")
	match = strings.ReplaceAll(match, ",", "")
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0
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
