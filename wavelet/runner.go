// SPDX-License-Identifier: MIT

package wavelet

import "github.com/katalvlaran/multires/grid"

// forRows runs fn over the rows of one stencil pass, split among the
// transform's workers.
func (t *Transform) forRows(rows int, fn func(start, end int)) error {
	return grid.ParallelRows(t.workers, rows, fn)
}
