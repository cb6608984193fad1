// SPDX-License-Identifier: MIT

package wavelet

import (
	"fmt"
	"math"

	"github.com/katalvlaran/multires/grid"
)

// combine merges the per-axis signed wavelet coefficients of one level into
// out over window: |h| for one axis, sqrt(sum_a h_a^2) otherwise. All inputs
// and out share the layout of layout.
func (t *Transform) combine(high [][]float64, layout *grid.CellData, out []float64, window grid.Box) error {
	if window.Empty() {
		return nil
	}
	n := window.Shape()[0]

	return t.forRows(grid.Rows(window), func(start, end int) {
		for row := start; row < end; row++ {
			o := layout.RowOffset(window, row)
			if len(high) == 1 {
				h := high[0]
				for i := o; i < o+n; i++ {
					out[i] = math.Abs(h[i])
				}
				continue
			}
			for i := o; i < o+n; i++ {
				var sum float64
				for _, h := range high {
					sum += h[i] * h[i]
				}
				out[i] = math.Sqrt(sum)
			}
		}
	})
}

// meanSource is one axis worth of local-mean input.
type meanSource struct {
	src   []float64
	srcF  *grid.CellData
	valid grid.Box
}

// localMean fills out over interior with the local mean of the level input at
// dyadic step. Per axis the mean stencil (unit-sum weights) is applied along
// that axis; the axes are combined as a root mean square, so a constant c is
// reproduced as |c| whatever the dimension.
// Errors: ErrHaloTooSmall.
func (t *Transform) localMean(srcs []meanSource, out []float64, outF *grid.CellData, interior grid.Box, step int) error {
	st := t.stencil
	r := st.Reach()
	if interior.Empty() {
		return nil
	}
	taps := make([]int, len(srcs))
	for a, s := range srcs {
		if need := interior.GrowAxis(a, r*step); !s.valid.ContainsBox(need) {
			return fmt.Errorf("local mean axis=%d step=%d reads %v outside %v: %w", a, step, need, s.valid, ErrHaloTooSmall)
		}
		taps[a] = s.srcF.Strides()[a] * step
	}
	n := interior.Shape()[0]
	width := st.Width()
	dims := float64(len(srcs))

	return t.forRows(grid.Rows(interior), func(start, end int) {
		bases := make([]int, len(srcs))
		for row := start; row < end; row++ {
			do := outF.RowOffset(interior, row)
			for a, s := range srcs {
				bases[a] = s.srcF.RowOffset(interior, row) - r*taps[a]
			}
			for i := 0; i < n; i++ {
				var sumSq, last float64
				for a, s := range srcs {
					so := bases[a] + i
					var m float64
					for k := 0; k < width; k++ {
						m += st.Mean[k] * s.src[so+k*taps[a]]
					}
					m /= st.MeanDiv
					sumSq += m * m
					last = m
				}
				if len(srcs) == 1 {
					out[do+i] = math.Abs(last)
				} else {
					out[do+i] = math.Sqrt(sumSq / dims)
				}
			}
		}
	})
}
