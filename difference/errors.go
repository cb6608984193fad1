// SPDX-License-Identifier: MIT

package difference

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by New and the Compute methods.
var (
	// ErrBadDimension indicates a dimensionality outside 1..3 or a field whose
	// dimensionality differs from the operator's.
	ErrBadDimension = errors.New("difference: dimension must be 1, 2 or 3 and match the operator")

	// ErrNilField indicates a nil input, difference or local-mean field.
	ErrNilField = errors.New("difference: nil field")

	// ErrBadDepth indicates a depth index outside the input field's components.
	ErrBadDepth = errors.New("difference: depth out of range")

	// ErrGhostWidth indicates an input field without the required ghost cell.
	ErrGhostWidth = errors.New("difference: ghost width below required width")

	// ErrExtentMismatch indicates an output whose interior box differs from
	// the input's.
	ErrExtentMismatch = errors.New("difference: field extents do not match")
)

// wrapf prefixes err with the operator name and method.
func wrapf(name, method string, err error) error {
	return fmt.Errorf("%s: %s: %w", name, method, err)
}
