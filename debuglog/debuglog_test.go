package debuglog

import (
	"encoding/json"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecorder_LogAndClear(t *testing.T) {
	r := NewRecorder()

	r.Log("SCAN_START", map[string]any{"movieId": "m1"})
	r.Log("SCAN_COMPLETE", map[string]any{"dates": 3})

	events := r.Events()
	assert.Len(t, events, 2)
	assert.Equal(t, "SCAN_START", events[0].Action)
	assert.Equal(t, "SCAN_COMPLETE", events[1].Action)

	r.Clear()
	assert.Empty(t, r.Events())
}

func TestRecorder_ConcurrentLog(t *testing.T) {
	r := NewRecorder()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Log("API_REQUEST", nil)
		}()
	}
	wg.Wait()

	assert.Len(t, r.Events(), 20)
}

func TestRecorder_Export(t *testing.T) {
	r := NewRecorder()
	r.now = func() time.Time {
		return time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	}
	r.Log("AUTH_TOKEN_SET", map[string]any{"tokenLength": 12})

	filename, err := r.Export()
	assert.NoError(t, err)
	defer os.Remove(filename)
	assert.Equal(t, "cgv-debug-2026-03-01T10-30-00.json", filename)

	data, err := os.ReadFile(filename)
	assert.NoError(t, err)
	var events []Event
	assert.NoError(t, json.Unmarshal(data, &events))
	assert.Len(t, events, 1)
	assert.Equal(t, "AUTH_TOKEN_SET", events[0].Action)
}
