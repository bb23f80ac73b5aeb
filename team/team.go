package team

import (
	"sync"
)

// WorkerFunc processes one job of type T into a result of type U. A
// returned error drops the result; the pool itself never fails.
type WorkerFunc[T any, U any] func(T) (U, error)

// Team is a generic worker pool: WorkerCount concurrent workers draining a
// shared job queue.
type Team[T any, U any] struct {
	WorkerCount int
	Worker      WorkerFunc[T, U]
}

// Run feeds the jobs through the pool and collects the successful results.
// Result order follows completion order, not job order; callers that need
// determinism key their results by job identity.
func (t *Team[T, U]) Run(jobs []T) []U {
	jobChan := make(chan T, len(jobs))
	resultChan := make(chan U, len(jobs))
	var wg sync.WaitGroup

	for range t.WorkerCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobChan {
				if res, err := t.Worker(job); err == nil {
					resultChan <- res
				}
			}
		}()
	}

	for _, job := range jobs {
		jobChan <- job
	}
	close(jobChan)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	var results []U
	for res := range resultChan {
		results = append(results, res)
	}
	return results
}

// FanOut runs one worker per job, so every job is issued before any single
// one is awaited.
func FanOut[T any, U any](jobs []T, worker WorkerFunc[T, U]) []U {
	t := &Team[T, U]{WorkerCount: len(jobs), Worker: worker}
	return t.Run(jobs)
}
