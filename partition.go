package quadpi

import "fmt"

// Request describes one quadrature run: how many midpoint samples to
// take over [0,1] and how many workers share them.
type Request struct {
	Steps   uint64
	Workers int
}

// Validate reports whether the request can produce at least one
// partition. It is checked centrally, before any partition is created
// or any worker launched.
func (r Request) Validate() error {
	if r.Workers <= 0 {
		return fmt.Errorf("worker count must be positive, got %d", r.Workers)
	}
	if r.Steps == 0 {
		return fmt.Errorf("step count must be positive, got %d", r.Steps)
	}
	return nil
}

// Partition is one worker's share of the integration domain: a
// contiguous sub-interval of [0,1] and the number of midpoint samples
// to take inside it. A partition is immutable after creation and owned
// by exactly one worker.
type Partition struct {
	Start float64
	End   float64
	Steps uint64
}

// Partitions splits [0,1] into req.Workers contiguous sub-intervals of
// equal width. Partition i spans [i/n, (i+1)/n); the endpoints are
// computed by division rather than multiplying by a reciprocal, so
// neighboring partitions share their boundary bit-exactly, the first
// starts at 0.0 and the last ends at exactly 1.0.
//
// Steps are assigned by truncating integer division: every partition
// receives Steps/Workers samples and the remainder Steps mod Workers is
// dropped, never computed. The truncation is intentional; it keeps the
// output identical to the reference computation.
//
// When Steps < Workers the division truncates to zero and every
// partition carries zero steps. Such partitions are still emitted so
// the interval coverage stays exact, but the orchestrator skips them
// without launching a worker.
func Partitions(req Request) ([]Partition, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	n := req.Workers
	stepsPer := req.Steps / uint64(n)

	parts := make([]Partition, n)
	for i := 0; i < n; i++ {
		parts[i] = Partition{
			Start: float64(i) / float64(n),
			End:   float64(i+1) / float64(n),
			Steps: stepsPer,
		}
	}
	return parts, nil
}
