// SPDX-License-Identifier: MIT

package grid

import "golang.org/x/sync/errgroup"

// ParallelRows splits [0, rows) into at most workers contiguous chunks and
// runs fn on each. With one worker, or a single row, fn runs once on the
// caller's goroutine. Chunks never overlap, so kernels writing one output
// cell per row position need no locking.
// Complexity: O(rows) scheduling, plus the cost of fn.
func ParallelRows(workers, rows int, fn func(start, end int)) error {
	if rows <= 0 {
		return nil
	}
	workers = min(workers, rows)
	if workers <= 1 {
		fn(0, rows)
		return nil
	}

	chunk := (rows + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < rows; start += chunk {
		start, end := start, min(start+chunk, rows)
		g.Go(func() error {
			fn(start, end)
			return nil
		})
	}

	return g.Wait()
}
