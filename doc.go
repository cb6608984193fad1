// SPDX-License-Identifier: MIT

// Package multires is a multiresolution smoothness analysis toolkit for
// structured-grid (patch-based AMR) fields.
//
// What is multires?
//
//	A small, dependency-light library that measures, per cell, how rough a
//	field is at several dyadic scales, the quantity adaptive mesh refinement
//	drivers threshold to decide where to refine:
//		• Grid containers: index boxes and ghost-padded multi-component fields
//		• Harten wavelet transform: k = 2 or 4 vanishing moments, L levels
//		• Local means for scale-free (normalized) indicators
//		• Second-derivative indicator as a single-level peer
//
// Packages:
//
//	grid/        IntVector, Box, CellData, validators and the row runner
//	wavelet/     halo sizing, smoothing, cascade, level driver, YAML config
//	difference/  second-difference indicator with local mean
//	examples/    runnable shock-tagging demo
//
// Quick start:
//
//	t, _ := wavelet.New(2, 3, 4)
//	box, _ := grid.BoxFromShape(grid.IntVector{64, 64})
//	rho, _ := grid.NewCellData(box, 1, t.GhostVector())
//	// ... fill rho, ghosts included ...
//	d, _ := t.Decompose(rho, 0, wavelet.DecomposeOptions{LocalMeans: true})
//	ind, _ := d.Normalized(0, 1e-12)
//
//	go get github.com/katalvlaran/multires
package multires
