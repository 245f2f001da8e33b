// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parallel implements the static-chunk parallel-for shared by
// the PML slab updater and the fractal generator: a fixed worker count
// partitions the outermost loop index into contiguous, disjoint
// chunks, grounded on the channel/sync.WaitGroup worker-pool pattern
// used for per-slice evaluation in the marching-cubes renderer sdfx
// (spec section 5).
package parallel

import "sync"

// For partitions [0,n) into contiguous chunks across workers
// goroutines and runs body over each chunk, joining all of them before
// returning — the kernel's only synchronization point. workers<=1 runs
// body inline with no goroutines spawned, keeping single-threaded
// determinism tests allocation-free.
func For(n, workers int, body func(start, end int)) {
	if n <= 0 {
		return
	}
	if workers <= 1 {
		body(0, n)
		return
	}
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= n {
			break
		}
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			body(start, end)
		}(start, end)
	}
	wg.Wait()
}
