// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Box is a half-open index box [Lo, Hi) on a 1-, 2- or 3-axis lattice.
// A box with Hi[a] == Lo[a] on some axis is empty but still valid.
type Box struct {
	Lo IntVector // inclusive lower corner
	Hi IntVector // exclusive upper corner
}

// NewBox validates and returns the box [lo, hi).
// Stage 1 (Validate): equal lengths within 1..MaxDim, hi >= lo.
// Stage 2 (Finalize): copy corners so the caller may reuse its slices.
// Complexity: O(dim).
func NewBox(lo, hi IntVector) (Box, error) {
	if len(lo) != len(hi) || len(lo) < 1 || len(lo) > MaxDim {
		return Box{}, gridErrorf("NewBox", ErrBadDimension)
	}
	if !hi.GreaterOrEqual(lo) {
		return Box{}, gridErrorf(fmt.Sprintf("NewBox(%v,%v)", lo, hi), ErrBadBox)
	}

	return Box{Lo: lo.Clone(), Hi: hi.Clone()}, nil
}

// BoxFromShape returns the box [0, shape).
func BoxFromShape(shape IntVector) (Box, error) {
	return NewBox(make(IntVector, len(shape)), shape)
}

// Dim returns the number of axes.
func (b Box) Dim() int { return len(b.Lo) }

// Shape returns the number of cells along every axis.
func (b Box) Shape() IntVector { return b.Hi.Sub(b.Lo) }

// Size returns the total number of cells.
func (b Box) Size() int {
	if b.Empty() {
		return 0
	}

	return b.Shape().Product()
}

// Empty reports whether the box holds no cells.
func (b Box) Empty() bool {
	for a := range b.Lo {
		if b.Hi[a] <= b.Lo[a] {
			return true
		}
	}

	return len(b.Lo) == 0
}

// Contains reports whether idx lies inside the box.
// Complexity: O(dim).
func (b Box) Contains(idx IntVector) bool {
	if len(idx) != len(b.Lo) {
		return false
	}
	for a := range idx {
		if idx[a] < b.Lo[a] || idx[a] >= b.Hi[a] {
			return false
		}
	}

	return true
}

// ContainsBox reports whether every cell of o lies inside b.
// An empty o is contained in any box of the same dimension.
func (b Box) ContainsBox(o Box) bool {
	if o.Dim() != b.Dim() {
		return false
	}
	if o.Empty() {
		return true
	}

	return o.Lo.GreaterOrEqual(b.Lo) && b.Hi.GreaterOrEqual(o.Hi)
}

// Grow extends the box by g[a] cells on both sides of every axis.
func (b Box) Grow(g IntVector) Box {
	return Box{Lo: b.Lo.Sub(g), Hi: b.Hi.Add(g)}
}

// GrowUniform extends the box by n cells on both sides of every axis.
func (b Box) GrowUniform(n int) Box {
	return b.Grow(Uniform(b.Dim(), n))
}

// GrowAxis extends the box by n cells on both sides of one axis.
// A negative n shrinks it.
func (b Box) GrowAxis(axis, n int) Box {
	out := Box{Lo: b.Lo.Clone(), Hi: b.Hi.Clone()}
	out.Lo[axis] -= n
	out.Hi[axis] += n

	return out
}

// ShrinkAxis removes n cells from both sides of one axis.
// The result is clamped so that Hi >= Lo.
func (b Box) ShrinkAxis(axis, n int) Box {
	out := b.GrowAxis(axis, -n)
	if out.Hi[axis] < out.Lo[axis] {
		out.Hi[axis] = out.Lo[axis]
	}

	return out
}

// Intersect returns the common part of b and o; empty when they are disjoint.
func (b Box) Intersect(o Box) Box {
	out := Box{Lo: make(IntVector, b.Dim()), Hi: make(IntVector, b.Dim())}
	for a := range b.Lo {
		out.Lo[a] = max(b.Lo[a], o.Lo[a])
		out.Hi[a] = max(min(b.Hi[a], o.Hi[a]), out.Lo[a])
	}

	return out
}

// Equal reports whether both corners match.
func (b Box) Equal(o Box) bool {
	return b.Lo.Equal(o.Lo) && b.Hi.Equal(o.Hi)
}

// String formats the box as "[lo,hi)".
func (b Box) String() string {
	return "[" + b.Lo.String() + "," + b.Hi.String() + ")"
}
