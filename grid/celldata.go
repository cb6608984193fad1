// SPDX-License-Identifier: MIT

package grid

import "fmt"

// CellData is a ghost-padded, cell-centred float64 field.
// box is the interior, ghosts the symmetric halo width per axis and depth the
// number of independent scalar components. Every component occupies one
// contiguous block of GhostBox().Size() values with axis 0 varying fastest.
type CellData struct {
	box     Box       // interior index box
	ghosts  IntVector // halo width per axis, >= 0
	gbox    Box       // box grown by ghosts
	strides IntVector // flat stride per axis inside one component
	depth   int       // number of components, >= 1
	size    int       // cells per component == gbox.Size()
	data    []float64 // depth*size values
}

// NewCellData allocates a zero-filled field over box with the given depth and
// ghost widths.
// Stage 1 (Validate): box dimension, depth >= 1, ghosts >= 0 with matching length.
// Stage 2 (Prepare): grow the box and derive per-axis strides.
// Stage 3 (Finalize): allocate depth*size zeros.
// Complexity: O(depth * ghost-box size) time and memory.
func NewCellData(box Box, depth int, ghosts IntVector) (*CellData, error) {
	if err := ValidateDim(box.Dim()); err != nil {
		return nil, gridErrorf("NewCellData", err)
	}
	if !box.Hi.GreaterOrEqual(box.Lo) {
		return nil, gridErrorf("NewCellData", ErrBadBox)
	}
	if depth < 1 {
		return nil, gridErrorf(fmt.Sprintf("NewCellData(depth=%d)", depth), ErrBadDepth)
	}
	if len(ghosts) != box.Dim() {
		return nil, gridErrorf("NewCellData", ErrBadDimension)
	}
	if !ghosts.GreaterOrEqual(make(IntVector, len(ghosts))) {
		return nil, gridErrorf(fmt.Sprintf("NewCellData(ghosts=%v)", ghosts), ErrBadGhostWidth)
	}

	gbox := box.Grow(ghosts)
	shape := gbox.Shape()
	strides := make(IntVector, len(shape))
	stride := 1
	for a := range shape {
		strides[a] = stride
		stride *= shape[a]
	}

	return &CellData{
		box:     Box{Lo: box.Lo.Clone(), Hi: box.Hi.Clone()},
		ghosts:  ghosts.Clone(),
		gbox:    gbox,
		strides: strides,
		depth:   depth,
		size:    stride,
		data:    make([]float64, depth*stride),
	}, nil
}

// Dim returns the number of spatial axes.
func (f *CellData) Dim() int { return f.box.Dim() }

// Box returns the interior box.
func (f *CellData) Box() Box { return f.box }

// GhostBox returns the interior box grown by the ghost widths.
func (f *CellData) GhostBox() Box { return f.gbox }

// GhostWidth returns a copy of the ghost widths.
func (f *CellData) GhostWidth() IntVector { return f.ghosts.Clone() }

// Depth returns the number of components.
func (f *CellData) Depth() int { return f.depth }

// Strides returns a copy of the flat stride of every axis within one component.
func (f *CellData) Strides() IntVector { return f.strides.Clone() }

// Len returns the number of cells in one component (ghosts included).
func (f *CellData) Len() int { return f.size }

// Offset maps an absolute cell index to its flat position within a component.
// Returns ErrOutOfRange if idx lies outside the ghost box.
// Complexity: O(dim).
func (f *CellData) Offset(idx IntVector) (int, error) {
	if !f.gbox.Contains(idx) {
		return 0, gridErrorf(fmt.Sprintf("CellData.Offset(%v)", idx), ErrOutOfRange)
	}

	return f.offset(idx), nil
}

// offset is the unchecked variant of Offset.
func (f *CellData) offset(idx IntVector) int {
	off := 0
	for a := range idx {
		off += (idx[a] - f.gbox.Lo[a]) * f.strides[a]
	}

	return off
}

// At returns component d at idx.
// Errors: ErrBadDepth, ErrOutOfRange.
func (f *CellData) At(d int, idx IntVector) (float64, error) {
	if err := ValidateDepth(f, d); err != nil {
		return 0, gridErrorf("CellData.At", err)
	}
	off, err := f.Offset(idx)
	if err != nil {
		return 0, err
	}

	return f.data[d*f.size+off], nil
}

// Set assigns v to component d at idx.
// Errors: ErrBadDepth, ErrOutOfRange.
func (f *CellData) Set(d int, idx IntVector, v float64) error {
	if err := ValidateDepth(f, d); err != nil {
		return gridErrorf("CellData.Set", err)
	}
	off, err := f.Offset(idx)
	if err != nil {
		return err
	}
	f.data[d*f.size+off] = v

	return nil
}

// Component returns the flat storage of component d, ghosts included.
// The slice aliases the field; writes through it are visible to At.
// Errors: ErrBadDepth.
func (f *CellData) Component(d int) ([]float64, error) {
	if err := ValidateDepth(f, d); err != nil {
		return nil, gridErrorf("CellData.Component", err)
	}

	return f.data[d*f.size : (d+1)*f.size : (d+1)*f.size], nil
}

// Fill sets every cell of component d (ghosts included) to v.
func (f *CellData) Fill(d int, v float64) error {
	comp, err := f.Component(d)
	if err != nil {
		return err
	}
	for i := range comp {
		comp[i] = v
	}

	return nil
}

// FillAll sets every cell of every component to v.
func (f *CellData) FillAll(v float64) {
	for i := range f.data {
		f.data[i] = v
	}
}

// FillFunc sets component d at every ghost-box cell to fn(idx).
// idx is reused between calls and must not be retained.
func (f *CellData) FillFunc(d int, fn func(idx IntVector) float64) error {
	comp, err := f.Component(d)
	if err != nil {
		return err
	}
	ForEach(f.gbox, func(idx IntVector) {
		comp[f.offset(idx)] = fn(idx)
	})

	return nil
}

// Clone returns a deep copy of the field.
// Complexity: O(depth * size).
func (f *CellData) Clone() *CellData {
	out := *f
	out.box = Box{Lo: f.box.Lo.Clone(), Hi: f.box.Hi.Clone()}
	out.gbox = Box{Lo: f.gbox.Lo.Clone(), Hi: f.gbox.Hi.Clone()}
	out.ghosts = f.ghosts.Clone()
	out.strides = f.strides.Clone()
	out.data = make([]float64, len(f.data))
	copy(out.data, f.data)

	return &out
}

// SameGhostBox reports whether f and o cover identical ghost boxes.
func (f *CellData) SameGhostBox(o *CellData) bool {
	return f.gbox.Equal(o.gbox)
}

// String summarises the field layout for debugging.
func (f *CellData) String() string {
	return fmt.Sprintf("CellData{box=%v ghosts=%v depth=%d}", f.box, f.ghosts, f.depth)
}
