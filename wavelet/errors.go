// SPDX-License-Identifier: MIT
// Package: multires/wavelet
//
// errors.go: sentinel errors for the wavelet package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Configuration errors come from New/Config and abort construction.
//   • Contract errors come from the Compute*/Decompose entry checks and abort
//     the call before any output is written.
//   • Grid-level causes are joined with %w so both sentinels match.

package wavelet

import (
	"errors"
	"fmt"
)

// Configuration errors.
var (
	// ErrUnsupportedMoments indicates a vanishing-moment order other than 2 or 4.
	ErrUnsupportedMoments = errors.New("wavelet: only 2 or 4 vanishing moments are allowed")

	// ErrTooFewLevels indicates fewer than two decomposition levels.
	ErrTooFewLevels = errors.New("wavelet: number of levels must be larger than 1")

	// ErrBadDimension indicates a dimensionality outside 1..3, or a field whose
	// dimensionality differs from the transform's.
	ErrBadDimension = errors.New("wavelet: dimension must be 1, 2 or 3 and match the transform")

	// ErrConfig indicates a malformed or invalid YAML configuration.
	ErrConfig = errors.New("wavelet: invalid configuration")
)

// Contract errors.
var (
	// ErrNilField indicates a nil input, coefficient or local-mean field.
	ErrNilField = errors.New("wavelet: nil field")

	// ErrBadDepth indicates a depth index outside the input field's components.
	ErrBadDepth = errors.New("wavelet: depth out of range")

	// ErrLevelCount indicates that the number of wavelet-coefficient fields
	// differs from the number of levels.
	ErrLevelCount = errors.New("wavelet: coefficient field count must equal number of levels")

	// ErrLocalMeanCount indicates a non-empty set of local-mean fields whose
	// size differs from the number of levels.
	ErrLocalMeanCount = errors.New("wavelet: local-mean field count must be 0 or equal number of levels")

	// ErrExtentMismatch indicates output fields whose boxes or ghost boxes
	// differ from each other or from the input field's interior box.
	ErrExtentMismatch = errors.New("wavelet: field extents do not match")

	// ErrGhostWidth indicates a field carrying fewer ghost cells than the
	// transform requires.
	ErrGhostWidth = errors.New("wavelet: ghost width below required width")

	// ErrHaloTooSmall indicates a stencil pass whose reads would leave the
	// valid data of its source. Entry checks make this unreachable in correct
	// usage; it guards the halo arithmetic itself.
	ErrHaloTooSmall = errors.New("wavelet: stencil window exceeds valid source data")

	// ErrLevelOutOfRange indicates a level index outside [0, NumLevels).
	ErrLevelOutOfRange = errors.New("wavelet: level out of range")

	// ErrAxisOutOfRange indicates an axis index outside [0, Dim).
	ErrAxisOutOfRange = errors.New("wavelet: axis out of range")

	// ErrNoLocalMeans indicates a request for local means on a decomposition
	// computed without them.
	ErrNoLocalMeans = errors.New("wavelet: local means were not computed")

	// ErrBadEpsilon indicates a normalisation offset that is not strictly positive.
	ErrBadEpsilon = errors.New("wavelet: eps must be positive")
)

// wrapf prefixes err with the transform name and method: "<name>: <method>: <err>".
func wrapf(name, method string, err error) error {
	return fmt.Errorf("%s: %s: %w", name, method, err)
}

// joinCause attaches a lower-level cause to a sentinel so errors.Is matches both.
func joinCause(sentinel, cause error) error {
	return fmt.Errorf("%w: %w", sentinel, cause)
}
