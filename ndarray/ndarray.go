// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"math/rand"

	"github.com/born-ml/zumpy/internal/ndarray"
)

// Array is a dense row-major N-dimensional array.
//
// Array provides:
//   - Metadata via Shape(), Rank(), DType(), ItemSize(), NumElements()
//   - Element access via At()/Set() or the typed Get/Put helpers
//   - Fill, Sum, SumRow, SumColumn
//   - Slice, Filter and MultiFilter, each returning an independent copy
//   - Text rendering via Text()/WriteText()
type Array = ndarray.Array

// Shape represents the dimensions of an array.
type Shape = ndarray.Shape

// DataType is the runtime element type tag.
type DataType = ndarray.DataType

// DType is the constraint satisfied by int32 and float32.
type DType = ndarray.DType

// Scalar is one element value tagged with its data type.
type Scalar = ndarray.Scalar

// Combinator merges per-element predicate results into a row decision.
type Combinator = ndarray.Combinator

// Predicate tests one element.
type Predicate = ndarray.Predicate

// FilterStage is one step of Array.MultiFilter.
type FilterStage = ndarray.FilterStage

// Supported data types.
const (
	Int32   = ndarray.Int32
	Float32 = ndarray.Float32
)

// Supported combinators.
const (
	Any = ndarray.Any
	All = ndarray.All
)

// Errors reported by array operations.
var (
	ErrInvalidShape     = ndarray.ErrInvalidShape
	ErrRankMismatch     = ndarray.ErrRankMismatch
	ErrOutOfRange       = ndarray.ErrOutOfRange
	ErrUnsupportedDType = ndarray.ErrUnsupportedDType
	ErrDTypeMismatch    = ndarray.ErrDTypeMismatch
	ErrReleased         = ndarray.ErrReleased
)

// New creates a zeroed array with the given shape and element type.
func New(shape Shape, dtype DataType) (*Array, error) {
	return ndarray.New(shape, dtype)
}

// MustNew is like New but panics on error.
func MustNew(shape Shape, dtype DataType) *Array {
	return ndarray.MustNew(shape, dtype)
}

// Int32Value wraps v as an Int32 scalar.
func Int32Value(v int32) Scalar {
	return ndarray.Int32Value(v)
}

// Float32Value wraps v as a Float32 scalar.
func Float32Value(v float32) Scalar {
	return ndarray.Float32Value(v)
}

// ParseDataType converts "int32"/"float32" into a DataType.
func ParseDataType(name string) (DataType, error) {
	return ndarray.ParseDataType(name)
}

// ParseCombinator converts "any"/"all" into a Combinator.
func ParseCombinator(name string) (Combinator, error) {
	return ndarray.ParseCombinator(name)
}

// Get returns the element at index as a T.
func Get[T DType](a *Array, index ...int) (T, error) {
	return ndarray.Get[T](a, index...)
}

// Put stores a T at index.
func Put[T DType](a *Array, value T, index ...int) error {
	return ndarray.Put(a, value, index...)
}

// Values returns a row-major copy of the elements.
func Values[T DType](a *Array) ([]T, error) {
	return ndarray.Values[T](a)
}

// FilterBy filters rows with a predicate over the array's element type.
func FilterBy[T DType](a *Array, pred func(T) bool, columns []int, mode Combinator) (*Array, bool, error) {
	return ndarray.FilterBy(a, pred, columns, mode)
}

// FromSlice creates an array from row-major data.
func FromSlice[T DType](data []T, shape Shape) (*Array, error) {
	return ndarray.FromSlice(data, shape)
}

// Full creates an array filled with value.
func Full[T DType](shape Shape, value T) (*Array, error) {
	return ndarray.Full(shape, value)
}

// Arange creates a 1D array with values from start to end (exclusive).
func Arange[T DType](start, end T) (*Array, error) {
	return ndarray.Arange(start, end)
}

// RandInt creates an Int32 array with values drawn from [lo, hi).
func RandInt(shape Shape, lo, hi int32, rng *rand.Rand) (*Array, error) {
	return ndarray.RandInt(shape, lo, hi, rng)
}

// Rand creates a Float32 array with values drawn from [0, 1).
func Rand(shape Shape, rng *rand.Rand) (*Array, error) {
	return ndarray.Rand(shape, rng)
}
