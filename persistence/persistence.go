package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/idamrohim/cgv-promo/entities"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Persistence records per-scan summaries for later inspection.
// Implementations: FilePersistence, PostgresPersistence.
type Persistence interface {
	WriteScanLog(ctx context.Context, entry entities.ScanLogEntry) error
}

// FilePersistence appends JSON lines to a local file.
type FilePersistence struct {
	FilePath string
	mu       sync.Mutex
}

func NewFilePersistence(filePath string) *FilePersistence {
	return &FilePersistence{FilePath: filePath}
}

func (f *FilePersistence) WriteScanLog(ctx context.Context, entry entities.ScanLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	file, err := os.OpenFile(f.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening log file: %w", err)
	}
	defer file.Close()
	enc := json.NewEncoder(file)
	if err := enc.Encode(entry); err != nil {
		return fmt.Errorf("error writing log entry: %w", err)
	}
	return nil
}

// PostgresPersistence writes scan summaries to the scan_log table.
type PostgresPersistence struct {
	Pool *pgxpool.Pool
}

func NewPostgresPersistence(pool *pgxpool.Pool) *PostgresPersistence {
	return &PostgresPersistence{Pool: pool}
}

func (p *PostgresPersistence) WriteScanLog(ctx context.Context, entry entities.ScanLogEntry) error {
	_, err := p.Pool.Exec(ctx, `
		INSERT INTO scan_log (movie_id, location_id, status, dates_found, schedules, scanned_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		entry.MovieID,
		entry.LocationID,
		entry.Status,
		entry.DatesFound,
		entry.Schedules,
		entry.ScannedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting scan log entry: %w", err)
	}
	return nil
}
