// SPDX-License-Identifier: MIT

package wavelet

import "fmt"

// Stencil describes the Harten interpolatory filters for one vanishing-moment
// order. Weights are integers applied at offsets t*s for t in [-Reach, Reach]
// (s is the dyadic step) and the weighted sum is divided by the matching
// divisor, so constant and polynomial inputs are reproduced exactly.
type Stencil struct {
	Moments int // vanishing moments k
	P, Q    int // left and right half widths

	Scaling    []float64 // low-pass weights
	ScalingDiv float64
	Wavelet    []float64 // high-pass weights
	WaveletDiv float64
	Mean       []float64 // local-mean weights, normalised to unit sum by MeanDiv
	MeanDiv    float64
}

// stencils is the table of supported orders.
var stencils = map[int]Stencil{
	2: {
		Moments: 2, P: 1, Q: 1,
		Scaling: []float64{1, 0, 1}, ScalingDiv: 2,
		Wavelet: []float64{-1, 2, -1}, WaveletDiv: 2,
		Mean: []float64{1, 2, 1}, MeanDiv: 4,
	},
	4: {
		Moments: 4, P: 2, Q: 2,
		Scaling: []float64{-1, 4, 0, 4, -1}, ScalingDiv: 6,
		Wavelet: []float64{1, -4, 6, -4, 1}, WaveletDiv: 6,
		Mean: []float64{1, 4, 6, 4, 1}, MeanDiv: 16,
	},
}

// StencilFor returns the stencil for k vanishing moments.
// Errors: ErrUnsupportedMoments for any k other than 2 or 4.
func StencilFor(k int) (Stencil, error) {
	st, ok := stencils[k]
	if !ok {
		return Stencil{}, fmt.Errorf("StencilFor(%d): %w", k, ErrUnsupportedMoments)
	}
	// The table is shared; hand out private weight slices.
	st.Scaling = append([]float64(nil), st.Scaling...)
	st.Wavelet = append([]float64(nil), st.Wavelet...)
	st.Mean = append([]float64(nil), st.Mean...)

	return st, nil
}

// Reach returns max(P, Q): the stencil half width at step 1.
func (s Stencil) Reach() int { return max(s.P, s.Q) }

// Width returns the number of taps, 2*Reach+1.
func (s Stencil) Width() int { return 2*s.Reach() + 1 }
