// SPDX-License-Identifier: MIT

// Package grid provides the structured-grid containers used by the
// multiresolution kernels: integer index vectors, half-open index boxes and
// ghost-padded, cell-centred fields with one or more depth components.
//
// The package provides:
//
//   - IntVector: a per-axis integer tuple (1, 2 or 3 axes).
//   - Box: a half-open index box [Lo, Hi) with grow/shrink/intersect helpers.
//   - CellData: a flat float64 array over an interior box plus a symmetric
//     ghost halo per axis, stored with axis 0 varying fastest.
//
// Indices are absolute cell indices. The interior box origin is Box().Lo, so
// a signed offset from the origin is simply idx.Sub(Box().Lo).
//
// All public indexers are bounds-checked and return ErrOutOfRange instead of
// panicking. Kernels that need raw speed validate a whole window once with
// Box.ContainsBox and then walk the flat Component slice through Strides.
//
//	box, _ := grid.NewBox(grid.IntVector{0, 0}, grid.IntVector{16, 16})
//	f, _ := grid.NewCellData(box, 1, grid.Uniform(2, 4))
//	_ = f.Set(0, grid.IntVector{3, 5}, 1.5)
package grid
