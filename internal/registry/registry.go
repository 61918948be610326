// Package registry exposes arrays to binding layers through opaque handles.
//
// A binding layer never holds an *ndarray.Array; it holds a Handle and calls
// the Registry, which owns every live array and releases each exactly once.
// Destroying a handle twice fails with ErrUnknownHandle rather than touching
// freed memory.
package registry

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/born-ml/zumpy/internal/ndarray"
)

// ErrUnknownHandle is returned for handles that were never issued or have
// already been destroyed.
var ErrUnknownHandle = errors.New("unknown array handle")

// Handle identifies one array owned by a Registry.
type Handle uuid.UUID

// String returns the canonical UUID text of the handle.
func (h Handle) String() string {
	return uuid.UUID(h).String()
}

// ParseHandle parses the text form produced by Handle.String.
func ParseHandle(s string) (Handle, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Handle{}, fmt.Errorf("parse handle %q: %w", s, err)
	}
	return Handle(id), nil
}

// Info is the metadata a binding layer may read about an array.
type Info struct {
	ByteSize    int              // Buffer length in bytes
	Shape       ndarray.Shape    // Dimensions
	Rank        int              // Number of axes
	ItemSize    int              // Bytes per element
	NumElements int              // Product of Shape
	DType       ndarray.DataType // Element type tag
}

// Registry maps handles to the arrays it owns.
// A Registry is not safe for concurrent use.
type Registry struct {
	arrays map[Handle]*ndarray.Array
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		arrays: make(map[Handle]*ndarray.Array),
	}
}

// Len returns the number of live arrays.
func (r *Registry) Len() int {
	return len(r.arrays)
}

// Create allocates a zeroed array and returns its handle.
func (r *Registry) Create(shape []int, dtype ndarray.DataType) (Handle, error) {
	a, err := ndarray.New(ndarray.Shape(shape), dtype)
	if err != nil {
		return Handle{}, fmt.Errorf("create: %w", err)
	}
	return r.Adopt(a), nil
}

// Adopt takes ownership of a and returns a new handle for it.
func (r *Registry) Adopt(a *ndarray.Array) Handle {
	h := Handle(uuid.New())
	r.arrays[h] = a
	return h
}

// Array returns the array behind h. The registry keeps ownership.
func (r *Registry) Array(h Handle) (*ndarray.Array, error) {
	a, ok := r.arrays[h]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownHandle, h)
	}
	return a, nil
}

// Destroy releases the array behind h and forgets the handle.
func (r *Registry) Destroy(h Handle) error {
	a, err := r.Array(h)
	if err != nil {
		return err
	}
	delete(r.arrays, h)
	a.Release()
	return nil
}

// Close destroys every live array.
func (r *Registry) Close() {
	for h, a := range r.arrays {
		a.Release()
		delete(r.arrays, h)
	}
}

// Info returns the metadata of the array behind h.
func (r *Registry) Info(h Handle) (Info, error) {
	a, err := r.Array(h)
	if err != nil {
		return Info{}, err
	}
	return Info{
		ByteSize:    a.ByteSize(),
		Shape:       a.Shape(),
		Rank:        a.Rank(),
		ItemSize:    a.ItemSize(),
		NumElements: a.NumElements(),
		DType:       a.DType(),
	}, nil
}

// Get reads the element at index.
func (r *Registry) Get(h Handle, index []int) (ndarray.Scalar, error) {
	a, err := r.Array(h)
	if err != nil {
		return ndarray.Scalar{}, err
	}
	return a.At(index...)
}

// Set writes value at index.
func (r *Registry) Set(h Handle, index []int, value ndarray.Scalar) error {
	a, err := r.Array(h)
	if err != nil {
		return err
	}
	return a.Set(value, index...)
}

// Fill writes value into every element.
func (r *Registry) Fill(h Handle, value ndarray.Scalar) error {
	a, err := r.Array(h)
	if err != nil {
		return err
	}
	return a.Fill(value)
}

// Sum returns the float sum of all elements.
func (r *Registry) Sum(h Handle) (float64, error) {
	a, err := r.Array(h)
	if err != nil {
		return 0, err
	}
	return a.Sum()
}

// Slice registers the cartesian-product slice of h and returns its handle.
func (r *Registry) Slice(h Handle, indices [][]int) (Handle, error) {
	a, err := r.Array(h)
	if err != nil {
		return Handle{}, err
	}
	out, err := a.Slice(indices)
	if err != nil {
		return Handle{}, err
	}
	return r.Adopt(out), nil
}

// Filter registers the filtered rows of h and returns their handle.
// ok is false when no row matched; no handle is issued in that case.
func (r *Registry) Filter(h Handle, pred ndarray.Predicate, columns []int, mode ndarray.Combinator) (Handle, bool, error) {
	a, err := r.Array(h)
	if err != nil {
		return Handle{}, false, err
	}
	out, ok, err := a.Filter(pred, columns, mode)
	if err != nil || !ok {
		return Handle{}, false, err
	}
	return r.Adopt(out), true, nil
}

// TextDump renders the array behind h.
func (r *Registry) TextDump(h Handle) (string, error) {
	a, err := r.Array(h)
	if err != nil {
		return "", err
	}
	return a.Text()
}
