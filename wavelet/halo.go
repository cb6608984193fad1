// SPDX-License-Identifier: MIT

package wavelet

import "fmt"

// RequiredGhostWidth returns the number of ghost cells, on every axis, that
// the input field and the coefficient fields must carry:
//
//	G = sum_{li=0}^{L-1} r*2^li + r*2^L,  r = max(p, q)
//
// Level li reads neighbours up to r*2^li cells away, and the extra r*2^L keeps
// the last level's valid window clear of the interior.
// Errors: ErrTooFewLevels if numLevels < 2, ErrUnsupportedMoments for k ∉ {2,4}.
// Complexity: O(numLevels).
func RequiredGhostWidth(numLevels, k int) (int, error) {
	st, err := StencilFor(k)
	if err != nil {
		return 0, err
	}
	if numLevels < 2 {
		return 0, fmt.Errorf("RequiredGhostWidth(%d): %w", numLevels, ErrTooFewLevels)
	}

	r := st.Reach()
	g := 0
	for li := 0; li < numLevels; li++ {
		g += r << li
	}
	g += r << numLevels

	return g, nil
}

// margin returns the number of cells the level-li window has lost on each
// side relative to the G-grown box: sum_{j=0}^{li} r*2^j.
func margin(r, li int) int {
	return r * ((2 << li) - 1)
}
