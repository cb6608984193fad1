// SPDX-License-Identifier: MIT

package wavelet

import (
	"fmt"

	"github.com/katalvlaran/multires/grid"
)

// DecomposeOptions selects the optional parts of Decompose.
type DecomposeOptions struct {
	Smooth     bool // apply the 3-point pre-filter before level 0
	LocalMeans bool // also compute one local-mean field per level
}

// Decomposition is the engine-allocated result of Decompose. Besides the
// combined coefficients it keeps the per-axis scaling and wavelet fields of
// every level.
type Decomposition struct {
	name     string
	dim      int
	interior grid.Box
	wavelet  []*grid.CellData
	means    []*grid.CellData
	ws       *workspace
}

// Decompose allocates the outputs and runs the transform on component depth
// of field. Unlike the Compute* methods it keeps the intermediates.
// Errors: as ComputeWaveletCoefficientsWithLocalMeans.
func (t *Transform) Decompose(field *grid.CellData, depth int, opts DecomposeOptions) (*Decomposition, error) {
	const method = "Decompose"
	if err := grid.ValidateNotNil(field); err != nil {
		return nil, wrapf(t.name, method, joinCause(ErrNilField, err))
	}
	coeffs, err := t.AllocateCoefficients(field.Box())
	if err != nil {
		return nil, err
	}
	var means []*grid.CellData
	if opts.LocalMeans {
		if means, err = t.AllocateCoefficients(field.Box()); err != nil {
			return nil, err
		}
	}
	ws, err := t.run(method, field, depth, coeffs, means, opts.Smooth)
	if err != nil {
		return nil, err
	}

	return &Decomposition{
		name:     t.name,
		dim:      t.dim,
		interior: field.Box(),
		wavelet:  coeffs,
		means:    means,
		ws:       ws,
	}, nil
}

// NumLevels returns the number of levels.
func (d *Decomposition) NumLevels() int { return len(d.wavelet) }

// Dim returns the number of spatial axes.
func (d *Decomposition) Dim() int { return d.dim }

// Box returns the interior box of the decomposed field.
func (d *Decomposition) Box() grid.Box { return d.interior }

// HasLocalMeans reports whether local means were computed.
func (d *Decomposition) HasLocalMeans() bool { return d.means != nil }

func (d *Decomposition) checkLevel(method string, li int) error {
	if li < 0 || li >= len(d.wavelet) {
		return wrapf(d.name, fmt.Sprintf("%s(%d)", method, li), ErrLevelOutOfRange)
	}

	return nil
}

func (d *Decomposition) checkAxis(method string, li, axis int) error {
	if err := d.checkLevel(method, li); err != nil {
		return err
	}
	if axis < 0 || axis >= d.dim {
		return wrapf(d.name, fmt.Sprintf("%s(%d,%d)", method, li, axis), ErrAxisOutOfRange)
	}

	return nil
}

// Window returns the cells of level li that hold computed coefficients.
func (d *Decomposition) Window(li int) (grid.Box, error) {
	if err := d.checkLevel("Window", li); err != nil {
		return grid.Box{}, err
	}

	return d.ws.windows[li], nil
}

// AxisWindow returns the cells of level li computed by the cascade along axis.
func (d *Decomposition) AxisWindow(li, axis int) (grid.Box, error) {
	if err := d.checkAxis("AxisWindow", li, axis); err != nil {
		return grid.Box{}, err
	}

	return d.ws.axisWindows[li][axis], nil
}

// Wavelet returns the combined wavelet-coefficient magnitudes of level li.
func (d *Decomposition) Wavelet(li int) (*grid.CellData, error) {
	if err := d.checkLevel("Wavelet", li); err != nil {
		return nil, err
	}

	return d.wavelet[li], nil
}

// LocalMean returns the local-mean field of level li.
// Errors: ErrNoLocalMeans, ErrLevelOutOfRange.
func (d *Decomposition) LocalMean(li int) (*grid.CellData, error) {
	if d.means == nil {
		return nil, wrapf(d.name, "LocalMean", ErrNoLocalMeans)
	}
	if err := d.checkLevel("LocalMean", li); err != nil {
		return nil, err
	}

	return d.means[li], nil
}

// Scaling returns the level-li scaling (low-pass) coefficients along axis.
func (d *Decomposition) Scaling(li, axis int) (*grid.CellData, error) {
	if err := d.checkAxis("Scaling", li, axis); err != nil {
		return nil, err
	}

	return d.ws.scaling[li][axis], nil
}

// AxisWavelet returns the signed level-li wavelet coefficients along axis.
func (d *Decomposition) AxisWavelet(li, axis int) (*grid.CellData, error) {
	if err := d.checkAxis("AxisWavelet", li, axis); err != nil {
		return nil, err
	}

	return d.ws.high[li][axis], nil
}

// Normalized returns W/(mean+eps) of level li over the interior box, the
// scale-free indicator a refinement driver compares with its tolerance.
// Cells outside the interior are 0. eps must be > 0 so that flat zero-mean
// regions give 0 instead of NaN.
// Errors: ErrBadEpsilon, ErrNoLocalMeans, ErrLevelOutOfRange.
func (d *Decomposition) Normalized(li int, eps float64) (*grid.CellData, error) {
	if !(eps > 0) {
		return nil, wrapf(d.name, fmt.Sprintf("Normalized(eps=%g)", eps), ErrBadEpsilon)
	}
	m, err := d.LocalMean(li)
	if err != nil {
		return nil, err
	}
	w := d.wavelet[li]
	out, err := grid.NewCellData(w.Box(), 1, w.GhostWidth())
	if err != nil {
		return nil, err
	}
	wc, mc, oc := component0(w), component0(m), component0(out)
	grid.ForEach(d.interior, func(idx grid.IntVector) {
		o, _ := out.Offset(idx)
		oc[o] = wc[o] / (mc[o] + eps)
	})

	return out, nil
}
