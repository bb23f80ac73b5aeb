package utils

import (
	"fmt"
	"sync/atomic"
	"time"
)

// ReportProgress prints scan progress once a second until stop is closed.
func ReportProgress(completed *int64, total int64, stop chan struct{}) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			current := atomic.LoadInt64(completed)
			percent := float64(current) / float64(total) * 100
			fmt.Printf("\rProgress: %d/%d (%.2f%%) dates scanned", current, total, percent)
		case <-stop:
			// Final progress update
			current := atomic.LoadInt64(completed)
			percent := float64(current) / float64(total) * 100
			fmt.Printf("\rProgress: %d/%d (%.2f%%) dates scanned\n", current, total, percent)
			return
		}
	}
}
