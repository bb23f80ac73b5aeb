package fetchschedules

import (
	"context"
	"errors"
	"testing"

	"github.com/idamrohim/cgv-promo/debuglog"
	"github.com/idamrohim/cgv-promo/entities"
	"github.com/stretchr/testify/assert"
)

type stubAPI struct {
	payload *entities.SchedulePayload
	err     error
	calls   int
}

func (s *stubAPI) GetSchedules(ctx context.Context, movieID, locationID, date string) (*entities.SchedulePayload, error) {
	s.calls++
	return s.payload, s.err
}

func (s *stubAPI) GetCinemas(ctx context.Context) ([]entities.Cinema, error) { return nil, nil }
func (s *stubAPI) GetMovies(ctx context.Context, locationID string) ([]entities.Movie, error) {
	return nil, nil
}
func (s *stubAPI) GetSeats(ctx context.Context, scheduleID string) (*entities.SeatPayload, error) {
	return nil, nil
}

type memoryPersistence struct {
	entries []entities.ScanLogEntry
}

func (m *memoryPersistence) WriteScanLog(ctx context.Context, entry entities.ScanLogEntry) error {
	m.entries = append(m.entries, entry)
	return nil
}

func showtimePayload() *entities.SchedulePayload {
	return &entities.SchedulePayload{
		Cinemas: []entities.CinemaGroup{{
			Name: "CGV Panakkukang",
			ScheduleTypes: []entities.ScheduleGroup{{
				Name:      "Regular 2D",
				Price:     "Rp50.000",
				Schedules: []entities.RawShowtime{{ScheduleID: "sch-1", StartTime: "19:00"}},
			}},
		}},
	}
}

func TestRunFetchSchedulesScansAndLogsSummary(t *testing.T) {
	// Arrange
	api := &stubAPI{payload: showtimePayload()}
	store := &memoryPersistence{}

	// Act
	index, err := RunFetchSchedules(context.Background(), &FetchSchedulesOptions{
		MovieID:     "mv-1",
		LocationID:  "loc-1",
		Status:      entities.StatusPlaying,
		Client:      api,
		Sink:        debuglog.Nop{},
		Persistence: store,
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 11, api.calls)
	assert.Len(t, index, 11)
	if assert.Len(t, store.entries, 1) {
		entry := store.entries[0]
		assert.Equal(t, "mv-1", entry.MovieID)
		assert.Equal(t, "loc-1", entry.LocationID)
		assert.Equal(t, string(entities.StatusPlaying), entry.Status)
		assert.Equal(t, len(index), entry.DatesFound)
		assert.Equal(t, index.Total(), entry.Schedules)
		assert.False(t, entry.ScannedAt.IsZero())
	}
}

func TestRunFetchSchedulesEmptyScanStillLogged(t *testing.T) {
	api := &stubAPI{err: errors.New("upstream down")}
	store := &memoryPersistence{}

	index, err := RunFetchSchedules(context.Background(), &FetchSchedulesOptions{
		MovieID:     "mv-1",
		LocationID:  "loc-1",
		Status:      entities.StatusPlaying,
		Client:      api,
		Persistence: store,
	})

	assert.NoError(t, err)
	assert.Empty(t, index)
	if assert.Len(t, store.entries, 1) {
		assert.Equal(t, 0, store.entries[0].DatesFound)
		assert.Equal(t, 0, store.entries[0].Schedules)
	}
}

func TestRunFetchSchedulesRequiresClient(t *testing.T) {
	_, err := RunFetchSchedules(context.Background(), &FetchSchedulesOptions{
		MovieID:    "mv-1",
		LocationID: "loc-1",
		Status:     entities.StatusPlaying,
	})
	assert.Error(t, err)
}
