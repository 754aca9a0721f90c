// Package parallel distributes the outer convolution loop across worker
// goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// minChunk bounds how small a stolen chunk may get; below this the atomic
// traffic outweighs the rebalancing benefit.
const minChunk = 4

// chunksPerWorker oversubscribes the chunk count so that workers finishing
// early can steal remaining ranges.
const chunksPerWorker = 4

// For executes fn(i) for every i in [0, n), using up to workers goroutines.
//
// Scheduling is dynamic: the index range is split into more chunks than
// workers and each worker claims the next unprocessed chunk from an atomic
// counter, so uneven per-index cost (NaN-heavy windows) rebalances
// automatically. workers <= 1 runs inline on the calling goroutine.
//
// fn must write only to locations derived from its own index; For adds no
// synchronization beyond the completion barrier.
func For(n, workers int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if workers > runtime.NumCPU() {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := n / (workers * chunksPerWorker)
	if chunk < minChunk {
		chunk = minChunk
	}
	numChunks := (n + chunk - 1) / chunk
	if workers > numChunks {
		workers = numChunks
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				c := int(next.Add(1)) - 1
				if c >= numChunks {
					return
				}
				start := c * chunk
				end := min(start+chunk, n)
				for i := start; i < end; i++ {
					fn(i)
				}
			}
		}()
	}

	wg.Wait()
}
