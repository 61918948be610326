package ndarray

import "fmt"

// Slice performs fancy indexing: indices holds one ordered list of positions
// per axis, and the result contains the cartesian product of those lists.
// Lists may repeat or reorder positions; the output shape is the list
// lengths. The result owns a fresh buffer.
//
// Example:
//
//	// Rows 2 and 0 (in that order), column 1 only.
//	sub, err := a.Slice([][]int{{2, 0}, {1}}) // shape [2 1]
func (a *Array) Slice(indices [][]int) (*Array, error) {
	if err := a.live(); err != nil {
		return nil, err
	}
	if len(indices) != len(a.shape) {
		return nil, fmt.Errorf("slice: %w: expected %d index lists, got %d", ErrRankMismatch, len(a.shape), len(indices))
	}

	outShape := make(Shape, len(indices))
	for axis, list := range indices {
		for _, idx := range list {
			if idx < 0 || idx >= a.shape[axis] {
				return nil, fmt.Errorf("slice: %w: index %d for axis %d (size %d)", ErrOutOfRange, idx, axis, a.shape[axis])
			}
		}
		outShape[axis] = len(list)
	}
	if err := outShape.Validate(); err != nil {
		return nil, fmt.Errorf("slice: %w", err)
	}

	out := newArray(outShape, a.dtype)
	pos := make([]int, len(outShape)) // Position in the output
	src := make([]int, len(outShape)) // Matching position in the source
	for flat := 0; ; flat++ {
		for axis, p := range pos {
			src[axis] = indices[axis][p]
		}
		out.copyElement(flat, a, a.offset(src))
		if more, _ := outShape.advance(pos); !more {
			break
		}
	}
	return out, nil
}
