// SPDX-License-Identifier: MIT

package grid

import (
	"strconv"
	"strings"
)

// MaxDim is the largest supported number of spatial axes.
const MaxDim = 3

// IntVector is a per-axis integer tuple: an index, an extent or a ghost width.
// Its length is the number of spatial axes.
type IntVector []int

// Uniform returns a dim-axis vector with every component set to v.
// Complexity: O(dim).
func Uniform(dim, v int) IntVector {
	out := make(IntVector, dim)
	for a := range out {
		out[a] = v
	}

	return out
}

// Dim returns the number of axes.
func (v IntVector) Dim() int { return len(v) }

// Clone returns an independent copy of v.
func (v IntVector) Clone() IntVector {
	out := make(IntVector, len(v))
	copy(out, v)

	return out
}

// Add returns v+w component-wise. Both vectors must have the same length.
func (v IntVector) Add(w IntVector) IntVector {
	out := make(IntVector, len(v))
	for a := range v {
		out[a] = v[a] + w[a]
	}

	return out
}

// Sub returns v-w component-wise. Both vectors must have the same length.
func (v IntVector) Sub(w IntVector) IntVector {
	out := make(IntVector, len(v))
	for a := range v {
		out[a] = v[a] - w[a]
	}

	return out
}

// Equal reports whether v and w have the same length and components.
func (v IntVector) Equal(w IntVector) bool {
	if len(v) != len(w) {
		return false
	}
	for a := range v {
		if v[a] != w[a] {
			return false
		}
	}

	return true
}

// GreaterOrEqual reports whether v[a] >= w[a] on every axis.
// Vectors of different length are never comparable and yield false.
func (v IntVector) GreaterOrEqual(w IntVector) bool {
	if len(v) != len(w) {
		return false
	}
	for a := range v {
		if v[a] < w[a] {
			return false
		}
	}

	return true
}

// Product returns the product of all components (1 for an empty vector).
func (v IntVector) Product() int {
	p := 1
	for _, x := range v {
		p *= x
	}

	return p
}

// String formats v as "(a,b,c)".
func (v IntVector) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for a, x := range v {
		if a > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(x))
	}
	sb.WriteByte(')')

	return sb.String()
}
