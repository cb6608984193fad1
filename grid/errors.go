// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Every message is prefixed with "grid: ..." so it is easy to grep. Methods
// wrap these sentinels with their own name through gridErrorf; callers match
// with errors.Is.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrBadDimension indicates a dimensionality outside 1..3 or two operands
	// with different numbers of axes.
	ErrBadDimension = errors.New("grid: dimension must be 1, 2 or 3 and match across operands")

	// ErrBadBox indicates a box whose upper corner lies below its lower corner.
	ErrBadBox = errors.New("grid: invalid box")

	// ErrBadDepth indicates a non-positive depth count or an out-of-range depth index.
	ErrBadDepth = errors.New("grid: invalid depth")

	// ErrBadGhostWidth indicates a negative ghost width or one below a required minimum.
	ErrBadGhostWidth = errors.New("grid: invalid ghost width")

	// ErrOutOfRange indicates that an index lies outside the ghost box of a field.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrNilField indicates that a nil *CellData was passed.
	ErrNilField = errors.New("grid: nil field")

	// ErrExtentMismatch indicates two fields whose boxes or ghost boxes differ.
	ErrExtentMismatch = errors.New("grid: extent mismatch")
)

// gridErrorf wraps err with the method tag: "<tag>: <err>".
func gridErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
