// SPDX-License-Identifier: MIT

package wavelet

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/multires/grid"
)

// Transform is a configured Harten multiresolution transform. It holds only
// construction parameters, so one Transform may serve concurrent calls.
type Transform struct {
	name       string
	dim        int
	numLevels  int
	stencil    Stencil
	ghostWidth int
	workers    int
	logger     *slog.Logger
}

// New returns a transform for dim-dimensional fields with numLevels levels and
// k vanishing moments.
// Stage 1 (Validate): dimension, vanishing moments, level count.
// Stage 2 (Prepare): resolve options, compute the required ghost width once.
// Errors: ErrBadDimension, ErrUnsupportedMoments, ErrTooFewLevels.
// Complexity: O(numLevels).
func New(dim, numLevels, k int, opts ...Option) (*Transform, error) {
	o := gatherOptions(opts...)
	if err := grid.ValidateDim(dim); err != nil {
		return nil, wrapf(o.name, "New", joinCause(ErrBadDimension, err))
	}
	st, err := StencilFor(k)
	if err != nil {
		return nil, wrapf(o.name, "New", err)
	}
	g, err := RequiredGhostWidth(numLevels, k)
	if err != nil {
		return nil, wrapf(o.name, "New", err)
	}

	t := &Transform{
		name:       o.name,
		dim:        dim,
		numLevels:  numLevels,
		stencil:    st,
		ghostWidth: g,
		workers:    o.workers,
		logger:     o.logger,
	}
	t.logger.Debug("wavelet transform configured",
		"name", t.name, "dim", dim, "levels", numLevels, "moments", k, "ghost_width", g)

	return t, nil
}

// Name returns the object name used in errors and log records.
func (t *Transform) Name() string { return t.name }

// Dim returns the number of spatial axes.
func (t *Transform) Dim() int { return t.dim }

// NumLevels returns the number of decomposition levels.
func (t *Transform) NumLevels() int { return t.numLevels }

// VanishingMoments returns k.
func (t *Transform) VanishingMoments() int { return t.stencil.Moments }

// Stencil returns the filter descriptor in use.
func (t *Transform) Stencil() Stencil {
	st, _ := StencilFor(t.stencil.Moments)

	return st
}

// GhostWidth returns the required ghost width G (same on every axis).
func (t *Transform) GhostWidth() int { return t.ghostWidth }

// GhostVector returns G as a per-axis vector.
func (t *Transform) GhostVector() grid.IntVector { return grid.Uniform(t.dim, t.ghostWidth) }

// Window returns the cells of level li that hold computed coefficients for a
// field with the given interior box: the box grown by G and shrunk by the
// accumulated stencil reach of levels 0..li on every axis.
func (t *Transform) Window(interior grid.Box, li int) (grid.Box, error) {
	if li < 0 || li >= t.numLevels {
		return grid.Box{}, wrapf(t.name, fmt.Sprintf("Window(%d)", li), ErrLevelOutOfRange)
	}

	return t.levelWindow(interior, li), nil
}

// levelWindow is the intersection of the level-li axis windows.
func (t *Transform) levelWindow(interior grid.Box, li int) grid.Box {
	axes := make([]grid.Box, t.dim)
	for a := range axes {
		axes[a] = t.axisWindow(interior, li, a)
	}

	return intersectAll(axes)
}

// intersectAll returns the cells common to every box; boxes is non-empty.
func intersectAll(boxes []grid.Box) grid.Box {
	w := boxes[0]
	for _, b := range boxes[1:] {
		w = w.Intersect(b)
	}

	return w
}

// axisWindow is the level-li window of a cascade along axis: shrunk along
// that axis only, spanning the G-grown box on the others.
func (t *Transform) axisWindow(interior grid.Box, li, axis int) grid.Box {
	return interior.GrowUniform(t.ghostWidth).ShrinkAxis(axis, margin(t.stencil.Reach(), li))
}

// AllocateCoefficients returns NumLevels zero-filled single-depth fields over
// box with the required ghost width, ready for ComputeWaveletCoefficients.
// Errors: ErrBadDimension, or the grid allocation error.
func (t *Transform) AllocateCoefficients(box grid.Box) ([]*grid.CellData, error) {
	if box.Dim() != t.dim {
		return nil, wrapf(t.name, "AllocateCoefficients", ErrBadDimension)
	}
	out := make([]*grid.CellData, t.numLevels)
	for li := range out {
		f, err := grid.NewCellData(box, 1, t.GhostVector())
		if err != nil {
			return nil, wrapf(t.name, "AllocateCoefficients", err)
		}
		out[li] = f
	}

	return out, nil
}

// ComputeWaveletCoefficients fills coeffs[li] with the level-li wavelet
// coefficient magnitudes of component depth of field. When smooth is true the
// level-0 cascade along each axis reads the 3-point smoothed field instead.
// Each coefficient field is zeroed first; cells outside Window(box, li) stay 0.
// Errors: see ComputeWaveletCoefficientsWithLocalMeans.
func (t *Transform) ComputeWaveletCoefficients(field *grid.CellData, depth int, coeffs []*grid.CellData, smooth bool) error {
	_, err := t.run("ComputeWaveletCoefficients", field, depth, coeffs, nil, smooth)

	return err
}

// ComputeWaveletCoefficientsWithLocalMeans is ComputeWaveletCoefficients that
// also fills means[li] with the local mean of the level-li input over the
// interior box. An empty means skips the local-mean computation.
// Errors (nothing is written when one is returned):
//   - ErrNilField, ErrBadDimension, ErrBadDepth for a bad input field;
//   - ErrGhostWidth if the input or a coefficient field has fewer than G ghosts;
//   - ErrLevelCount if len(coeffs) != NumLevels;
//   - ErrLocalMeanCount if means is neither empty nor NumLevels long;
//   - ErrExtentMismatch if outputs disagree on boxes or ghost boxes.
func (t *Transform) ComputeWaveletCoefficientsWithLocalMeans(field *grid.CellData, depth int, coeffs, means []*grid.CellData, smooth bool) error {
	_, err := t.run("ComputeWaveletCoefficientsWithLocalMeans", field, depth, coeffs, means, smooth)

	return err
}
