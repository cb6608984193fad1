// SPDX-License-Identifier: MIT

package wavelet

import (
	"fmt"

	"github.com/katalvlaran/multires/grid"
)

// Smooth returns one 3-point moving average of component depth of field per
// axis: depth a of the result holds, for every cell of the ghost box, the mean
// of the cell and its ±1 neighbours along axis a. Neighbours outside the
// field's ghost box are dropped, so edge cells average 1 or 2 samples and no
// read ever leaves allocated storage. The result has the same box and ghost
// widths as field.
// Errors: ErrNilField, ErrBadDepth.
// Complexity: O(dim * ghost-box size).
func Smooth(field *grid.CellData, depth int) (*grid.CellData, error) {
	return smoothField(field, depth, DefaultWorkers)
}

func smoothField(field *grid.CellData, depth, workers int) (*grid.CellData, error) {
	if err := grid.ValidateNotNil(field); err != nil {
		return nil, fmt.Errorf("Smooth: %w", joinCause(ErrNilField, err))
	}
	src, err := field.Component(depth)
	if err != nil {
		return nil, fmt.Errorf("Smooth(depth=%d): %w", depth, joinCause(ErrBadDepth, err))
	}
	out, err := grid.NewCellData(field.Box(), field.Dim(), field.GhostWidth())
	if err != nil {
		return nil, fmt.Errorf("Smooth: %w", err)
	}

	gb := field.GhostBox()
	n := gb.Shape()[0]
	strides := field.Strides()
	for a := 0; a < field.Dim(); a++ {
		dst, _ := out.Component(a)
		stride := strides[a]
		lo, hi := gb.Lo[a], gb.Hi[a]
		err := grid.ParallelRows(workers, grid.Rows(gb), func(start, end int) {
			for row := start; row < end; row++ {
				first := grid.RowStart(gb, row)
				base := field.RowOffset(gb, row)
				for i := 0; i < n; i++ {
					coord := first[a]
					if a == 0 {
						coord += i
					}
					o := base + i
					sum, cnt := src[o], 1.0
					if coord-1 >= lo {
						sum += src[o-stride]
						cnt++
					}
					if coord+1 < hi {
						sum += src[o+stride]
						cnt++
					}
					dst[o] = sum / cnt
				}
			}
		})
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}
