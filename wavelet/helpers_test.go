// SPDX-License-Identifier: MIT

package wavelet_test

import (
	"testing"

	"github.com/katalvlaran/multires/grid"
	"github.com/katalvlaran/multires/wavelet"
	"github.com/stretchr/testify/require"
)

// mustField allocates a single-depth field over [0, shape) with the given
// ghost width and fills every cell (ghosts included) with fn.
func mustField(t testing.TB, shape grid.IntVector, ghost int, fn func(idx grid.IntVector) float64) *grid.CellData {
	t.Helper()
	b, err := grid.BoxFromShape(shape)
	require.NoError(t, err)
	f, err := grid.NewCellData(b, 1, grid.Uniform(len(shape), ghost))
	require.NoError(t, err)
	if fn != nil {
		require.NoError(t, f.FillFunc(0, fn))
	}

	return f
}

// mustNew builds a transform or fails the test.
func mustNew(t testing.TB, dim, levels, k int, opts ...wavelet.Option) *wavelet.Transform {
	t.Helper()
	tr, err := wavelet.New(dim, levels, k, opts...)
	require.NoError(t, err)

	return tr
}

// at reads component 0 of f at idx or fails the test.
func at(t testing.TB, f *grid.CellData, idx ...int) float64 {
	t.Helper()
	v, err := f.At(0, grid.IntVector(idx))
	require.NoError(t, err)

	return v
}

// constant returns a fill function for the value c.
func constant(c float64) func(grid.IntVector) float64 {
	return func(grid.IntVector) float64 { return c }
}

// shapeOf returns a cubic shape of n cells per axis.
func shapeOf(dim, n int) grid.IntVector { return grid.Uniform(dim, n) }
