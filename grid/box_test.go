// SPDX-License-Identifier: MIT
// Package grid_test contains unit tests for IntVector and Box.
package grid_test

import (
	"testing"

	"github.com/katalvlaran/multires/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewBoxValidation ensures NewBox rejects bad dimensions and inverted corners.
func TestNewBoxValidation(t *testing.T) {
	_, err := grid.NewBox(grid.IntVector{0}, grid.IntVector{1, 2}) // mismatched lengths
	require.ErrorIs(t, err, grid.ErrBadDimension)

	_, err = grid.NewBox(grid.IntVector{0, 0, 0, 0}, grid.IntVector{1, 1, 1, 1}) // 4 axes
	require.ErrorIs(t, err, grid.ErrBadDimension)

	_, err = grid.NewBox(grid.IntVector{3}, grid.IntVector{2}) // hi < lo
	require.ErrorIs(t, err, grid.ErrBadBox)

	b, err := grid.NewBox(grid.IntVector{2}, grid.IntVector{2}) // empty is fine
	require.NoError(t, err)
	assert.True(t, b.Empty())
	assert.Equal(t, 0, b.Size())
}

// TestBoxShapeAndContains checks Shape, Size and Contains on a 2-D box.
func TestBoxShapeAndContains(t *testing.T) {
	b, err := grid.NewBox(grid.IntVector{-1, 2}, grid.IntVector{3, 5})
	require.NoError(t, err)

	assert.Equal(t, grid.IntVector{4, 3}, b.Shape())
	assert.Equal(t, 12, b.Size())
	assert.True(t, b.Contains(grid.IntVector{-1, 2}))  // lower corner is inclusive
	assert.False(t, b.Contains(grid.IntVector{3, 2}))  // upper corner is exclusive
	assert.False(t, b.Contains(grid.IntVector{0}))     // wrong dimension
	assert.Equal(t, "[(-1,2),(3,5))", b.String())
}

// TestBoxGrowShrinkIntersect covers the halo arithmetic helpers.
func TestBoxGrowShrinkIntersect(t *testing.T) {
	b, err := grid.BoxFromShape(grid.IntVector{8, 8})
	require.NoError(t, err)

	g := b.GrowUniform(3)
	assert.Equal(t, grid.IntVector{-3, -3}, g.Lo)
	assert.Equal(t, grid.IntVector{11, 11}, g.Hi)
	assert.True(t, g.ContainsBox(b))
	assert.False(t, b.ContainsBox(g))

	s := g.ShrinkAxis(0, 2)
	assert.Equal(t, grid.IntVector{-1, -3}, s.Lo)
	assert.Equal(t, grid.IntVector{9, 11}, s.Hi)

	collapsed := b.ShrinkAxis(1, 10) // clamped, never inverted
	assert.True(t, collapsed.Empty())
	assert.Equal(t, collapsed.Lo[1], collapsed.Hi[1])

	other, err := grid.NewBox(grid.IntVector{5, -2}, grid.IntVector{20, 4})
	require.NoError(t, err)
	in := b.Intersect(other)
	assert.Equal(t, grid.IntVector{5, 0}, in.Lo)
	assert.Equal(t, grid.IntVector{8, 4}, in.Hi)

	far, err := grid.NewBox(grid.IntVector{100, 100}, grid.IntVector{101, 101})
	require.NoError(t, err)
	assert.True(t, b.Intersect(far).Empty())
}

// TestIntVectorOps covers the small vector helpers.
func TestIntVectorOps(t *testing.T) {
	v := grid.IntVector{1, 2, 3}
	w := grid.Uniform(3, 2)

	assert.Equal(t, grid.IntVector{3, 4, 5}, v.Add(w))
	assert.Equal(t, grid.IntVector{-1, 0, 1}, v.Sub(w))
	assert.Equal(t, 6, v.Product())
	assert.True(t, v.Add(w).GreaterOrEqual(w))
	assert.False(t, v.GreaterOrEqual(w))

	c := v.Clone()
	c[0] = 42
	assert.Equal(t, 1, v[0]) // clone is independent
}

// TestForEachOrder verifies axis 0 varies fastest.
func TestForEachOrder(t *testing.T) {
	b, err := grid.NewBox(grid.IntVector{0, 10}, grid.IntVector{2, 12})
	require.NoError(t, err)

	var got []grid.IntVector
	grid.ForEach(b, func(idx grid.IntVector) {
		got = append(got, idx.Clone())
	})
	want := []grid.IntVector{{0, 10}, {1, 10}, {0, 11}, {1, 11}}
	assert.Equal(t, want, got)
}

// TestRowsAndRowStart checks row enumeration used by the slab runners.
func TestRowsAndRowStart(t *testing.T) {
	b, err := grid.NewBox(grid.IntVector{0, 1, 2}, grid.IntVector{4, 3, 5})
	require.NoError(t, err)

	require.Equal(t, 6, grid.Rows(b)) // 2 (axis 1) * 3 (axis 2)
	assert.Equal(t, grid.IntVector{0, 1, 2}, grid.RowStart(b, 0))
	assert.Equal(t, grid.IntVector{0, 2, 2}, grid.RowStart(b, 1))
	assert.Equal(t, grid.IntVector{0, 1, 3}, grid.RowStart(b, 2))
	assert.Equal(t, grid.IntVector{0, 2, 4}, grid.RowStart(b, 5))

	line, err := grid.BoxFromShape(grid.IntVector{7})
	require.NoError(t, err)
	assert.Equal(t, 1, grid.Rows(line))
}
