package team

import (
	"errors"
	"sort"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTeam_Run(t *testing.T) {
	pool := Team[int, int]{
		WorkerCount: 3,
		Worker: func(n int) (int, error) {
			return n * 2, nil
		},
	}

	results := pool.Run([]int{1, 2, 3, 4, 5})

	sort.Ints(results)
	assert.Equal(t, []int{2, 4, 6, 8, 10}, results)
}

func TestTeam_DropsErroredJobs(t *testing.T) {
	pool := Team[int, int]{
		WorkerCount: 2,
		Worker: func(n int) (int, error) {
			if n%2 == 0 {
				return 0, errors.New("even numbers fail")
			}
			return n, nil
		},
	}

	results := pool.Run([]int{1, 2, 3, 4, 5})

	sort.Ints(results)
	assert.Equal(t, []int{1, 3, 5}, results)
}

func TestFanOut_AllJobsInFlightTogether(t *testing.T) {
	// Every worker blocks until all four are running; the test only
	// completes if no job waits on another finishing first.
	const jobs = 4
	var running atomic.Int32
	release := make(chan struct{})

	results := FanOut([]int{1, 2, 3, 4}, func(n int) (int, error) {
		if running.Add(1) == jobs {
			close(release)
		}
		<-release
		return n, nil
	})

	assert.Len(t, results, jobs)
}
