package ndarray

import "fmt"

// At returns the element at the given index.
//
// Example:
//
//	v, err := a.At(2, 1, 1)
func (a *Array) At(index ...int) (Scalar, error) {
	if err := a.live(); err != nil {
		return Scalar{}, err
	}
	if err := a.shape.CheckIndex(index); err != nil {
		return Scalar{}, err
	}
	return a.scalarAt(a.offset(index)), nil
}

// Set stores value at the given index. The value's dtype must match the
// array's dtype.
func (a *Array) Set(value Scalar, index ...int) error {
	if err := a.live(); err != nil {
		return err
	}
	if value.dtype != a.dtype {
		return fmt.Errorf("%w: array is %s, value is %s", ErrDTypeMismatch, a.dtype, value.dtype)
	}
	if err := a.shape.CheckIndex(index); err != nil {
		return err
	}
	flat := a.offset(index)
	if a.dtype == Float32 {
		a.buf.float32s()[flat] = value.f
	} else {
		a.buf.int32s()[flat] = value.i
	}
	return nil
}

// Get returns the element at index as a T. T must match the array's dtype.
func Get[T DType](a *Array, index ...int) (T, error) {
	var zero T
	v, err := a.At(index...)
	if err != nil {
		return zero, err
	}
	return scalarAs[T](v)
}

// Put stores a T at index. T must match the array's dtype.
func Put[T DType](a *Array, value T, index ...int) error {
	return a.Set(ValueOf(value), index...)
}

// Values returns a copy of the elements in row-major order.
func Values[T DType](a *Array) ([]T, error) {
	if err := a.live(); err != nil {
		return nil, err
	}
	var zero T
	if dt := inferDataType(zero); dt != a.dtype {
		return nil, fmt.Errorf("%w: array is %s, requested %s", ErrDTypeMismatch, a.dtype, dt)
	}
	out := make([]T, a.NumElements())
	if a.dtype == Float32 {
		for i, v := range a.buf.float32s() {
			out[i] = T(v)
		}
	} else {
		for i, v := range a.buf.int32s() {
			out[i] = T(v)
		}
	}
	return out, nil
}
