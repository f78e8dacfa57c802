package quadpi

import "sync"

// Reducer combines partial integrals from concurrently running workers
// into a single total. The zero value is ready to use.
//
// The critical section covers exactly the one addition, keeping
// contention between workers minimal. The mutex only serializes
// concurrent contributions; reading a meaningful total additionally
// requires that every contributing worker has been joined first, which
// is the orchestrator's wait barrier, not the lock.
type Reducer struct {
	mu    sync.Mutex
	total float64
}

// Contribute adds one worker's partial result to the running total.
// Safe for concurrent use; cannot fail.
func (r *Reducer) Contribute(partial float64) {
	r.mu.Lock()
	r.total += partial
	r.mu.Unlock()
}

// Total returns the accumulated sum. Only valid once all workers have
// terminated.
func (r *Reducer) Total() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total
}
