// SPDX-License-Identifier: MIT

// Package difference computes a second-derivative smoothness indicator on
// ghost-padded grid fields. It is the single-level peer of package wavelet:
// one undivided second difference per axis at unit spacing, combined over the
// axes, with an optional local mean for normalisation.
//
//	d_a = (-f[i-e_a] + 2 f[i] - f[i+e_a]) / 2
//	out = sqrt(sum_a d_a^2)          (|d_0| in 1-D)
//	m_a = (f[i-e_a] + 2 f[i] + f[i+e_a]) / 4
//	mean = sqrt(sum_a m_a^2 / dim)   (|m_0| in 1-D)
//
// The weights are the k=2 rows of the wavelet stencil table, so the
// difference equals the level-0 wavelet coefficient of a k=2 transform.
// Values are written over the interior box only and need one ghost cell.
package difference
