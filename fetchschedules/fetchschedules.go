package fetchschedules

import (
	"context"
	"fmt"
	"time"

	"github.com/idamrohim/cgv-promo/cache"
	"github.com/idamrohim/cgv-promo/client"
	"github.com/idamrohim/cgv-promo/debuglog"
	"github.com/idamrohim/cgv-promo/entities"
	"github.com/idamrohim/cgv-promo/persistence"
	"github.com/idamrohim/cgv-promo/scanner"
	"github.com/idamrohim/cgv-promo/utils"
)

type FetchSchedulesOptions struct {
	MovieID     string
	LocationID  string
	Status      entities.MovieStatus
	Client      client.API
	Sink        debuglog.Sink
	Cache       *cache.ScheduleCache
	Persistence persistence.Persistence
	WriteFile   bool
}

// RunFetchSchedules scans the date window for a movie/location pair and
// returns the per-date schedule index. A fresh cache entry short-circuits the
// scan; a completed scan is cached, logged to persistence and optionally
// dumped to a snapshot file.
func RunFetchSchedules(ctx context.Context, options *FetchSchedulesOptions) (entities.ScheduleIndex, error) {
	if options.Client == nil {
		return nil, fmt.Errorf("no API client configured")
	}
	sink := options.Sink
	if sink == nil {
		sink = debuglog.Nop{}
	}

	if index, ok := options.Cache.Get(ctx, options.MovieID, options.LocationID, options.Status); ok {
		sink.Log("SCAN_CACHE_HIT", map[string]any{"movieId": options.MovieID, "dates": len(index)})
		fmt.Println("📦 Schedules served from cache")
		return index, nil
	}

	scan := scanner.New(options.Client, sink)

	// Progress reporting
	var completed int64 = 0
	scan.Completed = &completed
	totalDates := int64(len(scan.DateWindow(options.Status)))
	fmt.Printf("Total dates to scan: %d\n", totalDates)
	stopProgress := make(chan struct{})
	go utils.ReportProgress(&completed, totalDates, stopProgress)

	index := scan.ScanSchedules(ctx, options.MovieID, options.LocationID, options.Status)
	close(stopProgress)

	options.Cache.Put(ctx, options.MovieID, options.LocationID, options.Status, index)

	if options.Persistence != nil {
		entry := entities.ScanLogEntry{
			MovieID:    options.MovieID,
			LocationID: options.LocationID,
			Status:     string(options.Status),
			DatesFound: len(index),
			Schedules:  index.Total(),
			ScannedAt:  time.Now(),
		}
		if err := options.Persistence.WriteScanLog(ctx, entry); err != nil {
			fmt.Println("⚠️ Failed to write scan log:", err)
		}
	}

	if options.WriteFile && len(index) > 0 {
		path, err := utils.WriteIndexToFile(options.MovieID, index)
		if err != nil {
			return index, fmt.Errorf("failed to write schedule snapshot: %w", err)
		}
		fmt.Println("🏁 Done! Schedules written to", path)
	}

	return index, nil
}
