// Package quadpi approximates pi by integrating 4/(1+x*x) over [0,1]
// with the midpoint rule. The unit interval is split into one equal
// partition per worker, each partition's partial integral is computed
// by an independent goroutine, and the partials are folded into a
// single total by a mutex-guarded reducer behind a wait barrier.
package quadpi

import (
	"sync"
	"time"
)

// Result carries the finished approximation and the wall-clock duration
// of the parallel phase, measured from just before the first worker
// launches to just after the last one is joined.
type Result struct {
	Value   float64
	Elapsed time.Duration
}

// Run executes one quadrature request: validate, partition [0,1],
// launch one goroutine per partition, reduce the partial integrals and
// return the total.
//
// Each worker owns its partition exclusively, computes its partial
// without touching shared state, and contributes it to the reducer once
// on completion. Run then waits on the full join barrier before reading
// the total, so the returned value can never race with a late writer.
// Workers run to completion; there is no cancellation.
//
// Partitions with zero steps (possible when Steps < Workers) are
// skipped outright: no goroutine is launched and they contribute
// nothing, so a request with fewer steps than workers yields 0.
func Run(req Request) (Result, error) {
	parts, err := Partitions(req)
	if err != nil {
		return Result{}, err
	}

	var (
		red Reducer
		wg  sync.WaitGroup
	)

	start := time.Now()
	for _, p := range parts {
		if p.Steps == 0 {
			continue
		}
		wg.Add(1)
		go func(p Partition) {
			defer wg.Done()
			red.Contribute(PartialIntegral(p.Start, p.End, p.Steps))
		}(p)
	}
	wg.Wait()
	elapsed := time.Since(start)

	return Result{Value: red.Total(), Elapsed: elapsed}, nil
}
