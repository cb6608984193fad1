// SPDX-License-Identifier: MIT
// Package grid_test contains unit tests for CellData and validators.
package grid_test

import (
	"testing"

	"github.com/katalvlaran/multires/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustField allocates a field or fails the test.
func mustField(t *testing.T, shape grid.IntVector, depth, ghost int) *grid.CellData {
	t.Helper()
	b, err := grid.BoxFromShape(shape)
	require.NoError(t, err)
	f, err := grid.NewCellData(b, depth, grid.Uniform(len(shape), ghost))
	require.NoError(t, err)

	return f
}

// TestNewCellDataValidation ensures invalid layouts are rejected.
func TestNewCellDataValidation(t *testing.T) {
	b, err := grid.BoxFromShape(grid.IntVector{4, 4})
	require.NoError(t, err)

	_, err = grid.NewCellData(b, 0, grid.Uniform(2, 1)) // depth < 1
	require.ErrorIs(t, err, grid.ErrBadDepth)

	_, err = grid.NewCellData(b, 1, grid.IntVector{1}) // ghost length mismatch
	require.ErrorIs(t, err, grid.ErrBadDimension)

	_, err = grid.NewCellData(b, 1, grid.IntVector{1, -1}) // negative ghost
	require.ErrorIs(t, err, grid.ErrBadGhostWidth)

	_, err = grid.NewCellData(grid.Box{}, 1, nil) // zero-axis box
	require.ErrorIs(t, err, grid.ErrBadDimension)
}

// TestCellDataLayout verifies ghost box, strides and storage length.
func TestCellDataLayout(t *testing.T) {
	f := mustField(t, grid.IntVector{4, 3}, 2, 2)

	assert.Equal(t, 2, f.Dim())
	assert.Equal(t, 2, f.Depth())
	assert.Equal(t, grid.IntVector{-2, -2}, f.GhostBox().Lo)
	assert.Equal(t, grid.IntVector{6, 5}, f.GhostBox().Hi)
	assert.Equal(t, grid.IntVector{1, 8}, f.Strides())
	assert.Equal(t, 8*7, f.Len())

	off, err := f.Offset(grid.IntVector{-2, -2})
	require.NoError(t, err)
	assert.Equal(t, 0, off)

	off, err = f.Offset(grid.IntVector{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 3+2*8, off)

	_, err = f.Offset(grid.IntVector{6, 0})
	require.ErrorIs(t, err, grid.ErrOutOfRange)
}

// TestCellDataAtSet checks bounds-checked access and depth isolation.
func TestCellDataAtSet(t *testing.T) {
	f := mustField(t, grid.IntVector{3}, 2, 1)

	require.NoError(t, f.Set(1, grid.IntVector{-1}, 2.5))
	v, err := f.At(1, grid.IntVector{-1})
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	v, err = f.At(0, grid.IntVector{-1}) // other component untouched
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	_, err = f.At(2, grid.IntVector{0})
	require.ErrorIs(t, err, grid.ErrBadDepth)

	err = f.Set(0, grid.IntVector{4}, 1)
	require.ErrorIs(t, err, grid.ErrOutOfRange)

	comp, err := f.Component(1)
	require.NoError(t, err)
	require.Len(t, comp, f.Len())
	assert.Equal(t, 2.5, comp[0]) // index -1 is the first ghost cell
}

// TestCellDataFillAndClone covers Fill, FillAll, FillFunc and Clone independence.
func TestCellDataFillAndClone(t *testing.T) {
	f := mustField(t, grid.IntVector{2, 2}, 2, 1)

	f.FillAll(1)
	require.NoError(t, f.Fill(1, 3))
	require.NoError(t, f.FillFunc(0, func(idx grid.IntVector) float64 {
		return float64(idx[0] + 10*idx[1])
	}))

	v, err := f.At(0, grid.IntVector{1, -1})
	require.NoError(t, err)
	assert.Equal(t, -9.0, v)

	v, err = f.At(1, grid.IntVector{2, 2})
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	c := f.Clone()
	require.NoError(t, c.Set(1, grid.IntVector{0, 0}, -7))
	v, err = f.At(1, grid.IntVector{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 3.0, v) // source untouched
	assert.True(t, c.SameGhostBox(f))
}

// TestValidators exercises the shared guard helpers.
func TestValidators(t *testing.T) {
	a := mustField(t, grid.IntVector{4, 4}, 1, 2)
	b := mustField(t, grid.IntVector{4, 4}, 1, 3)
	c := mustField(t, grid.IntVector{5, 4}, 1, 2)
	line := mustField(t, grid.IntVector{4}, 1, 2)

	assert.ErrorIs(t, grid.ValidateNotNil(nil), grid.ErrNilField)
	assert.NoError(t, grid.ValidateNotNil(a))
	assert.ErrorIs(t, grid.ValidateDim(0), grid.ErrBadDimension)
	assert.ErrorIs(t, grid.ValidateDim(4), grid.ErrBadDimension)
	assert.NoError(t, grid.ValidateDim(3))

	assert.NoError(t, grid.ValidateGhostWidth(a, grid.Uniform(2, 2)))
	assert.ErrorIs(t, grid.ValidateGhostWidth(a, grid.Uniform(2, 3)), grid.ErrBadGhostWidth)
	assert.ErrorIs(t, grid.ValidateGhostWidth(a, grid.Uniform(1, 1)), grid.ErrBadDimension)

	assert.NoError(t, grid.ValidateSameBox(a, b))
	assert.ErrorIs(t, grid.ValidateSameGhostBox(a, b), grid.ErrExtentMismatch)
	assert.ErrorIs(t, grid.ValidateSameBox(a, c), grid.ErrExtentMismatch)
	assert.ErrorIs(t, grid.ValidateSameBox(a, line), grid.ErrBadDimension)
	assert.NoError(t, grid.ValidateSameGhostBox(a, a.Clone()))
}
