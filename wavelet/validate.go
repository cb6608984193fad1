// SPDX-License-Identifier: MIT

package wavelet

import (
	"fmt"

	"github.com/katalvlaran/multires/grid"
)

// validateCall runs every entry check of a transform call in a fixed order:
// input field → coefficient count → coefficient extents → local means.
// It returns a plain (unwrapped by method) error; run adds the context.
func (t *Transform) validateCall(field *grid.CellData, depth int, coeffs, means []*grid.CellData) error {
	// Input field.
	if err := grid.ValidateNotNil(field); err != nil {
		return joinCause(ErrNilField, err)
	}
	if field.Dim() != t.dim {
		return fmt.Errorf("field dim=%d, transform dim=%d: %w", field.Dim(), t.dim, ErrBadDimension)
	}
	if err := grid.ValidateDepth(field, depth); err != nil {
		return fmt.Errorf("depth=%d of %d: %w", depth, field.Depth(), joinCause(ErrBadDepth, err))
	}
	if err := grid.ValidateGhostWidth(field, t.GhostVector()); err != nil {
		return fmt.Errorf("input ghosts=%v, need %d: %w", field.GhostWidth(), t.ghostWidth, joinCause(ErrGhostWidth, err))
	}

	// Wavelet coefficient fields.
	if len(coeffs) != t.numLevels {
		return fmt.Errorf("got %d fields for %d levels: %w", len(coeffs), t.numLevels, ErrLevelCount)
	}
	for li, w := range coeffs {
		if err := grid.ValidateNotNil(w); err != nil {
			return fmt.Errorf("coefficients[%d]: %w", li, joinCause(ErrNilField, err))
		}
		if err := grid.ValidateSameBox(field, w); err != nil {
			return fmt.Errorf("coefficients[%d] box %v vs field box %v: %w", li, w.Box(), field.Box(), joinCause(ErrExtentMismatch, err))
		}
		if err := grid.ValidateSameGhostBox(coeffs[0], w); err != nil {
			return fmt.Errorf("coefficients[%d] ghost box %v vs %v: %w", li, w.GhostBox(), coeffs[0].GhostBox(), joinCause(ErrExtentMismatch, err))
		}
	}
	if err := grid.ValidateGhostWidth(coeffs[0], t.GhostVector()); err != nil {
		return fmt.Errorf("coefficient ghosts=%v, need %d: %w", coeffs[0].GhostWidth(), t.ghostWidth, joinCause(ErrGhostWidth, err))
	}

	// Local means: none, or one per level with the coefficients' extents.
	if len(means) == 0 {
		return nil
	}
	if len(means) != len(coeffs) {
		return fmt.Errorf("got %d local-mean fields for %d levels: %w", len(means), t.numLevels, ErrLocalMeanCount)
	}
	for li, m := range means {
		if err := grid.ValidateNotNil(m); err != nil {
			return fmt.Errorf("localMeans[%d]: %w", li, joinCause(ErrNilField, err))
		}
		if err := grid.ValidateSameGhostBox(coeffs[0], m); err != nil {
			return fmt.Errorf("localMeans[%d] ghost box %v vs %v: %w", li, m.GhostBox(), coeffs[0].GhostBox(), joinCause(ErrExtentMismatch, err))
		}
	}

	return nil
}
