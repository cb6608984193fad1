// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//  - Single source of truth for the field checks shared by the kernels.
//  - Return plain sentinels (no wrapping) so call sites wrap uniformly.
//
// All checks are pure and allocate nothing.

package grid

// ValidateDim checks that dim lies within 1..MaxDim.
func ValidateDim(dim int) error {
	if dim < 1 || dim > MaxDim {
		return ErrBadDimension
	}

	return nil
}

// ValidateNotNil checks that f is non-nil.
func ValidateNotNil(f *CellData) error {
	if f == nil {
		return ErrNilField
	}

	return nil
}

// ValidateDepth checks that 0 <= d < f.Depth(). Assumes f is non-nil.
func ValidateDepth(f *CellData, d int) error {
	if d < 0 || d >= f.depth {
		return ErrBadDepth
	}

	return nil
}

// ValidateGhostWidth checks that f carries at least want ghost cells on every
// axis. Assumes f is non-nil.
func ValidateGhostWidth(f *CellData, want IntVector) error {
	if len(want) != f.Dim() {
		return ErrBadDimension
	}
	if !f.ghosts.GreaterOrEqual(want) {
		return ErrBadGhostWidth
	}

	return nil
}

// ValidateSameBox checks that a and b share the same interior box.
func ValidateSameBox(a, b *CellData) error {
	if a.Dim() != b.Dim() {
		return ErrBadDimension
	}
	if !a.box.Equal(b.box) {
		return ErrExtentMismatch
	}

	return nil
}

// ValidateSameGhostBox checks that a and b share the same interior box and
// the same ghost box.
func ValidateSameGhostBox(a, b *CellData) error {
	if err := ValidateSameBox(a, b); err != nil {
		return err
	}
	if !a.SameGhostBox(b) {
		return ErrExtentMismatch
	}

	return nil
}
