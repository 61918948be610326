package ndarray

import "fmt"

// Fill writes value into every element of the array.
func (a *Array) Fill(value Scalar) error {
	if err := a.live(); err != nil {
		return err
	}
	if value.dtype != a.dtype {
		return fmt.Errorf("%w: array is %s, value is %s", ErrDTypeMismatch, a.dtype, value.dtype)
	}
	if a.dtype == Float32 {
		data := a.buf.float32s()
		for i := range data {
			data[i] = value.f
		}
		return nil
	}
	data := a.buf.int32s()
	for i := range data {
		data[i] = value.i
	}
	return nil
}

// Sum returns the sum of all elements, accumulated as a float.
// Int32 elements are widened; no overflow guard is applied.
//
// Example:
//
//	a := ndarray.MustNew(ndarray.Shape{3, 3}, ndarray.Int32)
//	_ = a.Fill(ndarray.Int32Value(10))
//	s, _ := a.Sum() // 90
func (a *Array) Sum() (float64, error) {
	if err := a.live(); err != nil {
		return 0, err
	}
	return a.sumRange(0, a.NumElements(), 1, 1), nil
}

// SumRow returns the sum of all elements whose axis-0 index is row.
func (a *Array) SumRow(row int) (float64, error) {
	if err := a.live(); err != nil {
		return 0, err
	}
	if row < 0 || row >= a.shape[0] {
		return 0, fmt.Errorf("%w: row %d (size %d)", ErrOutOfRange, row, a.shape[0])
	}
	rowSize := a.stride[0]
	return a.sumRange(row*rowSize, rowSize, 1, 1), nil
}

// SumColumn returns the sum of all elements whose axis-1 index is col.
// The array must have at least two axes.
func (a *Array) SumColumn(col int) (float64, error) {
	if err := a.live(); err != nil {
		return 0, err
	}
	if len(a.shape) < 2 {
		return 0, fmt.Errorf("%w: column sum needs rank >= 2, got %d", ErrRankMismatch, len(a.shape))
	}
	if col < 0 || col >= a.shape[1] {
		return 0, fmt.Errorf("%w: column %d (size %d)", ErrOutOfRange, col, a.shape[1])
	}
	// Every row holds one contiguous block of stride[1] elements for col.
	return a.sumRange(col*a.stride[1], a.stride[1], a.stride[0], a.shape[0]), nil
}

// sumRange sums count blocks of length elements, the first starting at
// start and each next one step elements further.
func (a *Array) sumRange(start, length, step, count int) float64 {
	var sum float64
	switch a.dtype {
	case Float32:
		data := a.buf.float32s()
		for b := 0; b < count; b++ {
			base := start + b*step
			for _, v := range data[base : base+length] {
				sum += float64(v)
			}
		}
	default:
		data := a.buf.int32s()
		for b := 0; b < count; b++ {
			base := start + b*step
			for _, v := range data[base : base+length] {
				sum += float64(v)
			}
		}
	}
	return sum
}
