// SPDX-License-Identifier: MIT

// Package wavelet implements the Harten multiresolution transform on
// ghost-padded structured-grid fields (grid.CellData) in one, two or three
// dimensions.
//
// What is it?
//
//	The transform measures, per cell and per dyadic level, how far a field
//	departs from a local polynomial fit. Smooth regions produce coefficients
//	near zero; shocks and steep fronts produce large ones. Adaptive-mesh
//	codes threshold the coefficients (usually divided by a local mean) to
//	decide where to refine.
//
// Key features:
//   - k = 2 or 4 vanishing moments: polynomials of degree < k give zero.
//   - Non-decimated ("à trous") cascade: the grid keeps its resolution and the
//     tap distance doubles per level, 2^li.
//   - Exact halo sizing: RequiredGhostWidth reports G = sum r*2^li + r*2^L.
//   - Optional 3-point smoothing pre-filter and per-level local means.
//   - Deterministic row-parallel passes (WithWorkers), levels strictly ordered.
//
// Usage:
//
//	t, err := wavelet.New(2, 3, 4)           // 2-D, 3 levels, k=4
//	g := t.GhostWidth()                      // allocate fields with >= g ghosts
//	coeffs, _ := t.AllocateCoefficients(box)
//	err = t.ComputeWaveletCoefficients(field, 0, coeffs, false)
//
// Decompose does the allocation itself and keeps the per-axis scaling and
// wavelet fields for inspection.
//
// Windows: level li holds coefficients on the interior box grown by G and
// shrunk by sum_{j<=li} r*2^j on every axis; the interior is always inside.
// Cells outside the window are 0.
//
// Complexity: O(L * dim * (2r+1) * ghost-box size) time, O(L * dim) extra
// fields of memory per call.
package wavelet
