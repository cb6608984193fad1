// SPDX-License-Identifier: MIT

package wavelet

import (
	"fmt"

	"github.com/katalvlaran/multires/grid"
)

// cascadePass is one 1-D cascade step: the low- and high-pass filters of the
// stencil applied along one axis at dyadic step 2^level. The grid keeps its
// resolution; only the tap distance doubles per level.
type cascadePass struct {
	src  []float64      // level input: raw or smoothed data, or previous scaling
	srcF *grid.CellData // layout of src
	// valid is the part of src holding meaningful data: the input ghost box
	// at level 0, the previous level's window along the same axis otherwise.
	valid grid.Box

	low, high []float64      // outputs: scaling and signed wavelet coefficients
	dstF      *grid.CellData // layout of low and high

	window grid.Box // cells to compute
	axis   int
	step   int
}

// cascade runs p over its window, rows shared among the transform's workers.
// The window grown by the stencil reach along the axis must lie inside
// p.valid; this single check replaces per-cell bounds checks.
// Errors: ErrHaloTooSmall.
func (t *Transform) cascade(p cascadePass) error {
	st := t.stencil
	r := st.Reach()
	if p.window.Empty() {
		return nil
	}
	if need := p.window.GrowAxis(p.axis, r*p.step); !p.valid.ContainsBox(need) {
		return fmt.Errorf("cascade axis=%d step=%d reads %v outside %v: %w", p.axis, p.step, need, p.valid, ErrHaloTooSmall)
	}
	if !p.dstF.GhostBox().ContainsBox(p.window) {
		return fmt.Errorf("cascade axis=%d window %v outside %v: %w", p.axis, p.window, p.dstF.GhostBox(), ErrHaloTooSmall)
	}

	tap := p.srcF.Strides()[p.axis] * p.step
	n := p.window.Shape()[0]
	width := st.Width()

	return t.forRows(grid.Rows(p.window), func(start, end int) {
		for row := start; row < end; row++ {
			so := p.srcF.RowOffset(p.window, row) - r*tap
			do := p.dstF.RowOffset(p.window, row)
			for i := 0; i < n; i++ {
				var lo, hi float64
				for k := 0; k < width; k++ {
					x := p.src[so+i+k*tap]
					if w := st.Scaling[k]; w != 0 {
						lo += w * x
					}
					hi += st.Wavelet[k] * x
				}
				p.low[do+i] = lo / st.ScalingDiv
				p.high[do+i] = hi / st.WaveletDiv
			}
		}
	})
}
