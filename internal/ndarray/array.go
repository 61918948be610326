package ndarray

import "fmt"

// Array is a dense row-major N-dimensional array of Int32 or Float32
// elements. Each Array exclusively owns its buffer: Slice, Filter and Clone
// always produce deep copies, never views.
//
// An Array is not safe for concurrent use.
type Array struct {
	buf    *storage // Exclusively owned element buffer
	shape  Shape    // Array dimensions, fixed for the Array's lifetime
	stride []int    // Row-major element strides
	dtype  DataType // Element type, fixed for the Array's lifetime
}

// New creates an Array with the given shape and element type.
// The buffer is allocated and zeroed.
//
// Example:
//
//	a, err := ndarray.New(ndarray.Shape{3, 3, 3}, ndarray.Int32)
//	if err != nil {
//	    return err
//	}
//	defer a.Release()
func New(shape Shape, dtype DataType) (*Array, error) {
	if !dtype.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDType, int(dtype))
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return newArray(shape, dtype), nil
}

// MustNew is like New but panics on error.
func MustNew(shape Shape, dtype DataType) *Array {
	a, err := New(shape, dtype)
	if err != nil {
		panic(err)
	}
	return a
}

// newArray skips validation; shape and dtype must already be valid.
func newArray(shape Shape, dtype DataType) *Array {
	return &Array{
		buf:    allocate(shape.NumElements(), dtype),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}
}

// Release frees the Array's buffer. Any later operation other than Release
// and the metadata accessors fails with ErrReleased.
func (a *Array) Release() {
	a.buf.release()
}

// Released reports whether Release has been called.
func (a *Array) Released() bool {
	return a.buf.released()
}

func (a *Array) live() error {
	if a.buf.released() {
		return ErrReleased
	}
	return nil
}

// Shape returns a copy of the array's shape.
func (a *Array) Shape() Shape {
	return a.shape.Clone()
}

// Rank returns the number of axes.
func (a *Array) Rank() int {
	return len(a.shape)
}

// Strides returns the array's row-major element strides.
func (a *Array) Strides() []int {
	return append([]int(nil), a.stride...)
}

// DType returns the element type.
func (a *Array) DType() DataType {
	return a.dtype
}

// ItemSize returns the byte size of one element.
func (a *Array) ItemSize() int {
	return a.dtype.Size()
}

// NumElements returns the total number of elements.
func (a *Array) NumElements() int {
	return a.shape.NumElements()
}

// ByteSize returns the buffer size in bytes.
func (a *Array) ByteSize() int {
	return a.NumElements() * a.dtype.Size()
}

// Data returns the raw byte buffer in native byte order, or nil once released.
// WARNING: Direct access to underlying memory.
func (a *Array) Data() []byte {
	return a.buf.data
}

// Clone returns a deep copy of the array.
func (a *Array) Clone() (*Array, error) {
	if err := a.live(); err != nil {
		return nil, err
	}
	return &Array{
		buf:    a.buf.clone(),
		shape:  a.shape.Clone(),
		stride: a.Strides(),
		dtype:  a.dtype,
	}, nil
}

// String returns a short description such as "Array[int32][3 2]".
func (a *Array) String() string {
	return fmt.Sprintf("Array[%s]%v", a.dtype, a.shape)
}

// offset returns the flat element offset for an already validated index.
func (a *Array) offset(index []int) int {
	offset := 0
	for i, idx := range index {
		offset += idx * a.stride[i]
	}
	return offset
}

// scalarAt reads the element at a flat offset.
func (a *Array) scalarAt(flat int) Scalar {
	if a.dtype == Float32 {
		return Float32Value(a.buf.float32s()[flat])
	}
	return Int32Value(a.buf.int32s()[flat])
}

// copyElement copies one element from src at srcFlat into a at dstFlat.
// Both arrays must share a dtype.
func (a *Array) copyElement(dstFlat int, src *Array, srcFlat int) {
	size := a.dtype.Size()
	copy(a.buf.data[dstFlat*size:(dstFlat+1)*size], src.buf.data[srcFlat*size:(srcFlat+1)*size])
}
