package debuglog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Sink receives structured diagnostic events from the client and the
// scanner. Implementations must be safe for concurrent use; callers fire
// and forget.
type Sink interface {
	Log(action string, data any)
}

// Nop discards every event.
type Nop struct{}

func (Nop) Log(string, any) {}

// Event is one recorded diagnostic entry.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Data      any       `json:"data"`
}

// Recorder is an in-memory, growable event log that can be exported to a
// JSON file for later inspection.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	now    func() time.Time
}

func NewRecorder() *Recorder {
	return &Recorder{now: time.Now}
}

func (r *Recorder) Log(action string, data any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{
		Timestamp: r.now(),
		Action:    action,
		Data:      data,
	})
}

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = r.events[:0]
}

// Export writes the recorded events to a timestamped JSON file and returns
// its name.
func (r *Recorder) Export() (string, error) {
	events := r.Events()
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal debug log: %w", err)
	}
	stamp := strings.ReplaceAll(r.now().Format("2006-01-02T15:04:05"), ":", "-")
	filename := fmt.Sprintf("cgv-debug-%s.json", stamp)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write debug log: %w", err)
	}
	return filename, nil
}
