// SPDX-License-Identifier: MIT

package grid

// ForEach calls fn for every cell of b, axis 0 fastest.
// The idx slice is reused between calls and must not be retained.
// Complexity: O(b.Size()).
func ForEach(b Box, fn func(idx IntVector)) {
	if b.Empty() {
		return
	}
	idx := b.Lo.Clone()
	for {
		fn(idx)
		a := 0
		for ; a < len(idx); a++ {
			idx[a]++
			if idx[a] < b.Hi[a] {
				break
			}
			idx[a] = b.Lo[a]
		}
		if a == len(idx) {
			return
		}
	}
}

// Rows returns the number of axis-0 rows in b: the product of the extents of
// axes 1..dim-1. A 1-D box has exactly one row.
func Rows(b Box) int {
	if b.Empty() {
		return 0
	}
	n := 1
	for a := 1; a < b.Dim(); a++ {
		n *= b.Hi[a] - b.Lo[a]
	}

	return n
}

// RowStart returns the index of the first cell of row r of b, where rows are
// numbered with axis 1 fastest. Together with Rows it lets callers split the
// rows of a box into independent [start, end) chunks.
func RowStart(b Box, r int) IntVector {
	idx := b.Lo.Clone()
	for a := 1; a < b.Dim(); a++ {
		ext := b.Hi[a] - b.Lo[a]
		idx[a] += r % ext
		r /= ext
	}

	return idx
}

// RowOffset returns the flat offset of the first cell of row r of b inside f.
// The caller guarantees that b lies within f's ghost box.
func (f *CellData) RowOffset(b Box, r int) int {
	return f.offset(RowStart(b, r))
}
