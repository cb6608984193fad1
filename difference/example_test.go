// SPDX-License-Identifier: MIT

package difference_test

import (
	"fmt"

	"github.com/katalvlaran/multires/difference"
	"github.com/katalvlaran/multires/grid"
)

// ExampleSecondDerivative_ComputeDifference flags the edges of a step.
func ExampleSecondDerivative_ComputeDifference() {
	op, _ := difference.New(1)
	box, _ := grid.BoxFromShape(grid.IntVector{6})
	f, _ := grid.NewCellData(box, 1, grid.Uniform(1, op.RequiredGhostWidth()))
	_ = f.FillFunc(0, func(idx grid.IntVector) float64 {
		if idx[0] >= 3 {
			return 2
		}
		return 0
	})
	out, _ := grid.NewCellData(box, 1, grid.Uniform(1, 0))
	if err := op.ComputeDifference(f, 0, out); err != nil {
		fmt.Println("error:", err)

		return
	}
	c, _ := out.Component(0)
	fmt.Println(c)
	// Output:
	// [0 0 1 1 0 0]
}
