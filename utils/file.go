package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/idamrohim/cgv-promo/constant"
	"github.com/idamrohim/cgv-promo/entities"
)

// WriteIndexToFile dumps a scan's schedule index to a timestamped JSON file
// under the files directory and returns the path written.
func WriteIndexToFile(movieID string, index entities.ScheduleIndex) (string, error) {
	if err := os.MkdirAll(constant.FilesPath, 0755); err != nil {
		return "", fmt.Errorf("error creating files directory: %w", err)
	}

	stamp := time.Now().Format("20060102_150405")
	path := filepath.Join(constant.FilesPath, fmt.Sprintf("schedules_%s_%s.json", movieID, stamp))

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshalling schedule index: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("error writing schedule file: %w", err)
	}
	return path, nil
}
