// Package ndarray implements a dense, fixed-rank N-dimensional array engine
// with Int32 and Float32 element types.
package ndarray

import "fmt"

// DType is a constraint for the element types an Array can hold.
type DType interface {
	int32 | float32
}

// DataType is the runtime element type tag of an Array.
type DataType int

// Supported data types.
const (
	Int32 DataType = iota
	Float32
)

// Size returns the byte size of one element.
func (dt DataType) Size() int {
	switch dt {
	case Int32, Float32:
		return 4
	default:
		panic("unknown data type")
	}
}

// Valid reports whether dt is one of the supported element types.
func (dt DataType) Valid() bool {
	return dt == Int32 || dt == Float32
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Int32:
		return "int32"
	case Float32:
		return "float32"
	default:
		return "unknown"
	}
}

// ParseDataType converts a textual type name into a DataType.
// Both "float32" and the shorter "float" are accepted.
func ParseDataType(name string) (DataType, error) {
	switch name {
	case "int32", "int":
		return Int32, nil
	case "float32", "float":
		return Float32, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedDType, name)
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case int32:
		return Int32
	case float32:
		return Float32
	default:
		panic("unsupported type")
	}
}
