// Package dispatch is the "submit work, await result" boundary for
// codec calls. Encode and decode are synchronous and stateless, so
// parallelism lives entirely here: callers fan work out over a
// bounded set of workers and collect results in order.
package dispatch

import (
	"runtime"
	"sync"
)

// Map runs fn over items on at most workers goroutines and returns
// the results in input order. workers <= 0 means NumCPU. fn must be
// safe to call concurrently; results carry their own error state.
func Map[S, R any](workers int, items []S, fn func(S) R) []R {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]R, len(items))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for i, item := range items {
		wg.Add(1)
		go func(idx int, it S) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[idx] = fn(it)
		}(i, item)
	}
	wg.Wait()
	return results
}
