package ndarray

import (
	"fmt"
	"math"
	"strconv"
)

// Scalar is a single element value tagged with its data type.
// The zero value is an Int32 zero.
type Scalar struct {
	dtype DataType
	i     int32
	f     float32
}

// Int32Value wraps v as an Int32 scalar.
func Int32Value(v int32) Scalar {
	return Scalar{dtype: Int32, i: v}
}

// Float32Value wraps v as a Float32 scalar.
func Float32Value(v float32) Scalar {
	return Scalar{dtype: Float32, f: v}
}

// ValueOf wraps a typed Go value as a Scalar.
func ValueOf[T DType](v T) Scalar {
	switch x := any(v).(type) {
	case int32:
		return Int32Value(x)
	case float32:
		return Float32Value(x)
	default:
		panic("unsupported type")
	}
}

// ScalarOf converts v into a Scalar of type dtype. Float32 conversion may
// round; Int32 conversion requires an integral value within int32 range.
func ScalarOf(dtype DataType, v float64) (Scalar, error) {
	switch dtype {
	case Int32:
		if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
			return Scalar{}, fmt.Errorf("%w: %v is not representable as int32", ErrDTypeMismatch, v)
		}
		return Int32Value(int32(v)), nil
	case Float32:
		return Float32Value(float32(v)), nil
	default:
		return Scalar{}, fmt.Errorf("%w: %d", ErrUnsupportedDType, int(dtype))
	}
}

// DType returns the scalar's data type.
func (s Scalar) DType() DataType {
	return s.dtype
}

// Int32 returns the value of an Int32 scalar.
// Panics if the scalar is not Int32.
func (s Scalar) Int32() int32 {
	if s.dtype != Int32 {
		panic(fmt.Sprintf("scalar dtype is %s, not int32", s.dtype))
	}
	return s.i
}

// Float32 returns the value of a Float32 scalar.
// Panics if the scalar is not Float32.
func (s Scalar) Float32() float32 {
	if s.dtype != Float32 {
		panic(fmt.Sprintf("scalar dtype is %s, not float32", s.dtype))
	}
	return s.f
}

// Float64 widens the value of either kind to float64.
func (s Scalar) Float64() float64 {
	if s.dtype == Float32 {
		return float64(s.f)
	}
	return float64(s.i)
}

// String formats the value the way the text renderer does.
func (s Scalar) String() string {
	if s.dtype == Float32 {
		return strconv.FormatFloat(float64(s.f), 'f', 6, 32)
	}
	return strconv.FormatInt(int64(s.i), 10)
}

// scalarAs extracts a T from s, failing if the kinds differ.
func scalarAs[T DType](s Scalar) (T, error) {
	var zero T
	if dt := inferDataType(zero); dt != s.dtype {
		return zero, fmt.Errorf("%w: have %s, want %s", ErrDTypeMismatch, s.dtype, dt)
	}
	if s.dtype == Int32 {
		return T(s.i), nil
	}
	return T(s.f), nil
}
