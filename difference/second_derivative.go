// SPDX-License-Identifier: MIT

package difference

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/multires/grid"
	"github.com/katalvlaran/multires/wavelet"
)

// SecondDerivative is the second-difference smoothness indicator.
// It carries no per-call state and is safe for concurrent use.
type SecondDerivative struct {
	name    string
	dim     int
	workers int
	logger  *slog.Logger
	stencil wavelet.Stencil
}

// New returns a second-derivative operator for dim-dimensional fields.
// Errors: ErrBadDimension.
func New(dim int, opts ...Option) (*SecondDerivative, error) {
	o := gatherOptions(opts...)
	if err := grid.ValidateDim(dim); err != nil {
		return nil, wrapf(o.name, "New", fmt.Errorf("%w: %w", ErrBadDimension, err))
	}
	st, err := wavelet.StencilFor(2)
	if err != nil {
		return nil, wrapf(o.name, "New", err)
	}
	o.logger.Debug("second derivative configured", "name", o.name, "dim", dim)

	return &SecondDerivative{name: o.name, dim: dim, workers: o.workers, logger: o.logger, stencil: st}, nil
}

// Name returns the object name used in errors and log records.
func (s *SecondDerivative) Name() string { return s.name }

// Dim returns the number of spatial axes.
func (s *SecondDerivative) Dim() int { return s.dim }

// RequiredGhostWidth returns the ghost cells the input needs on every axis.
func (s *SecondDerivative) RequiredGhostWidth() int { return 1 }

// ComputeDifference writes the combined second difference of component depth
// of field into component 0 of out over the interior box. The rest of out is
// zeroed.
// Errors: ErrNilField, ErrBadDimension, ErrBadDepth, ErrGhostWidth,
// ErrExtentMismatch.
func (s *SecondDerivative) ComputeDifference(field *grid.CellData, depth int, out *grid.CellData) error {
	return s.run("ComputeDifference", field, depth, out, nil)
}

// ComputeDifferenceWithLocalMean is ComputeDifference that also writes the
// root-mean-square of the per-axis local means into component 0 of mean.
func (s *SecondDerivative) ComputeDifferenceWithLocalMean(field *grid.CellData, depth int, out, mean *grid.CellData) error {
	if mean == nil {
		return wrapf(s.name, "ComputeDifferenceWithLocalMean", fmt.Errorf("local mean: %w", ErrNilField))
	}

	return s.run("ComputeDifferenceWithLocalMean", field, depth, out, mean)
}

func (s *SecondDerivative) validate(field *grid.CellData, depth int, out, mean *grid.CellData) error {
	if field == nil || out == nil {
		return ErrNilField
	}
	if field.Dim() != s.dim {
		return fmt.Errorf("field dim=%d, operator dim=%d: %w", field.Dim(), s.dim, ErrBadDimension)
	}
	if err := grid.ValidateDepth(field, depth); err != nil {
		return fmt.Errorf("%w: %w", ErrBadDepth, err)
	}
	if err := grid.ValidateGhostWidth(field, grid.Uniform(s.dim, s.RequiredGhostWidth())); err != nil {
		return fmt.Errorf("%w: %w", ErrGhostWidth, err)
	}
	if err := grid.ValidateSameBox(field, out); err != nil {
		return fmt.Errorf("difference: %w: %w", ErrExtentMismatch, err)
	}
	if mean != nil {
		if err := grid.ValidateSameBox(field, mean); err != nil {
			return fmt.Errorf("local mean: %w: %w", ErrExtentMismatch, err)
		}
	}

	return nil
}

// run validates, zeroes the outputs and sweeps the interior row by row.
// Complexity: O(dim * interior size).
func (s *SecondDerivative) run(method string, field *grid.CellData, depth int, out, mean *grid.CellData) error {
	if err := s.validate(field, depth, out, mean); err != nil {
		return wrapf(s.name, method, err)
	}
	s.logger.Debug("second derivative",
		"name", s.name, "method", method, "depth", depth, "local_mean", mean != nil, "box", field.Box().String())

	src, _ := field.Component(depth)
	dst, _ := out.Component(0)
	clear(dst)
	var mdst []float64
	if mean != nil {
		mdst, _ = mean.Component(0)
		clear(mdst)
	}

	interior := field.Box()
	n := interior.Shape()[0]
	strides := field.Strides()
	st := s.stencil
	dims := float64(s.dim)

	err := grid.ParallelRows(s.workers, grid.Rows(interior), func(start, end int) {
		for row := start; row < end; row++ {
			so := field.RowOffset(interior, row)
			do := out.RowOffset(interior, row)
			mo := 0
			if mean != nil {
				mo = mean.RowOffset(interior, row)
			}
			for i := 0; i < n; i++ {
				c := so + i
				var dSq, mSq, dLast, mLast float64
				for a := 0; a < s.dim; a++ {
					l, r := src[c-strides[a]], src[c+strides[a]]
					d := (st.Wavelet[0]*l + st.Wavelet[1]*src[c] + st.Wavelet[2]*r) / st.WaveletDiv
					dSq += d * d
					dLast = d
					if mean != nil {
						m := (st.Mean[0]*l + st.Mean[1]*src[c] + st.Mean[2]*r) / st.MeanDiv
						mSq += m * m
						mLast = m
					}
				}
				if s.dim == 1 {
					dst[do+i] = math.Abs(dLast)
				} else {
					dst[do+i] = math.Sqrt(dSq)
				}
				if mean == nil {
					continue
				}
				if s.dim == 1 {
					mdst[mo+i] = math.Abs(mLast)
				} else {
					mdst[mo+i] = math.Sqrt(mSq / dims)
				}
			}
		}
	})
	if err != nil {
		return wrapf(s.name, method, err)
	}

	return nil
}
