package ndarray

import (
	"fmt"
	"math"
)

// maxItemSize bounds the byte size of any supported element type.
const maxItemSize = 4

// Shape represents the dimensions of an array.
type Shape []int

// NumElements returns the total number of elements described by the shape.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks that the shape has at least one axis, that every
// dimension is positive and that the buffer byte size fits in an int.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: rank must be at least 1", ErrInvalidShape)
	}
	n := 1
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be > 0)", ErrInvalidShape, i, dim)
		}
		if n > math.MaxInt/dim/maxItemSize {
			return fmt.Errorf("%w: %v is too large to allocate", ErrInvalidShape, s)
		}
		n *= dim
	}
	return nil
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// stride[i] is the product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Offset returns the flat element offset of index. Index components are not
// bounds checked; use CheckIndex first when the index is untrusted.
// Panics if len(index) != len(s).
func (s Shape) Offset(index []int) int {
	if len(index) != len(s) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(s), len(index)))
	}
	offset := 0
	stride := 1
	for i := len(s) - 1; i >= 0; i-- {
		offset += index[i] * stride
		stride *= s[i]
	}
	return offset
}

// CheckIndex verifies that index has one component per axis and that every
// component lies in [0, s[axis]).
func (s Shape) CheckIndex(index []int) error {
	if len(index) != len(s) {
		return fmt.Errorf("%w: expected %d indices, got %d", ErrRankMismatch, len(s), len(index))
	}
	for axis, idx := range index {
		if idx < 0 || idx >= s[axis] {
			return fmt.Errorf("%w: index %d for axis %d (size %d)", ErrOutOfRange, idx, axis, s[axis])
		}
	}
	return nil
}

// advance moves index to the next position in row-major order within s.
// It returns false once every position has been visited and index has
// wrapped back to all zeros. wrapped receives the number of axes that
// rolled over, which the text renderer uses for line breaks.
func (s Shape) advance(index []int) (more bool, wrapped int) {
	for axis := len(s) - 1; axis >= 0; axis-- {
		index[axis]++
		if index[axis] < s[axis] {
			return true, wrapped
		}
		index[axis] = 0
		wrapped++
	}
	return false, wrapped
}
