package ndarray

import (
	"fmt"
	"math/rand"
)

// Zeros creates an array of the given shape and dtype filled with zeros.
func Zeros(shape Shape, dtype DataType) (*Array, error) {
	return New(shape, dtype)
}

// Full creates an array filled with value. The dtype follows T.
//
// Example:
//
//	a, _ := ndarray.Full(ndarray.Shape{3, 2}, int32(10))
func Full[T DType](shape Shape, value T) (*Array, error) {
	a, err := New(shape, inferDataType(value))
	if err != nil {
		return nil, err
	}
	if err := a.Fill(ValueOf(value)); err != nil {
		return nil, err
	}
	return a, nil
}

// FromSlice creates an array from a Go slice in row-major order.
// The slice is copied into the array's buffer.
func FromSlice[T DType](data []T, shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d", ErrInvalidShape, shape, shape.NumElements(), len(data))
	}

	var dummy T
	a := newArray(shape, inferDataType(dummy))
	switch src := any(data).(type) {
	case []int32:
		copy(a.buf.int32s(), src)
	case []float32:
		copy(a.buf.float32s(), src)
	}
	return a, nil
}

// Arange creates a 1D array with values from start to end (exclusive), step 1.
//
// Example:
//
//	a, _ := ndarray.Arange[int32](0, 10) // [0 1 2 ... 9]
func Arange[T DType](start, end T) (*Array, error) {
	n := int(end - start)
	if float64(n) < float64(end-start) {
		n++
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: end %v must be greater than start %v", ErrInvalidShape, end, start)
	}
	data := make([]T, n)
	for i := range data {
		data[i] = start + T(i)
	}
	return FromSlice(data, Shape{n})
}

// RandInt creates an Int32 array with values uniformly drawn from [lo, hi).
// Note: Uses math/rand (not crypto/rand); pass a seeded source for
// reproducible data.
func RandInt(shape Shape, lo, hi int32, rng *rand.Rand) (*Array, error) {
	if hi <= lo {
		return nil, fmt.Errorf("randint: empty range [%d, %d)", lo, hi)
	}
	a, err := New(shape, Int32)
	if err != nil {
		return nil, err
	}
	span := int64(hi) - int64(lo)
	data := a.buf.int32s()
	for i := range data {
		data[i] = int32(int64(lo) + rng.Int63n(span)) //nolint:gosec // G115: result lies in [lo, hi)
	}
	return a, nil
}

// Rand creates a Float32 array with values uniformly drawn from [0, 1).
func Rand(shape Shape, rng *rand.Rand) (*Array, error) {
	a, err := New(shape, Float32)
	if err != nil {
		return nil, err
	}
	data := a.buf.float32s()
	for i := range data {
		data[i] = rng.Float32()
	}
	return a, nil
}
