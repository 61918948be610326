package ndarray

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetadata(t *testing.T) {
	shapes := []Shape{{1}, {7}, {3, 2}, {3, 3, 3}, {2, 1, 4, 3}}
	for _, dt := range []DataType{Int32, Float32} {
		for _, s := range shapes {
			a, err := New(s, dt)
			require.NoError(t, err)
			assert.Equal(t, s.NumElements(), a.NumElements())
			assert.Equal(t, len(s), a.Rank())
			assert.Equal(t, 4, a.ItemSize())
			assert.Equal(t, a.NumElements()*4, a.ByteSize())
			assert.Len(t, a.Data(), a.ByteSize())
			assert.Equal(t, s, a.Shape())
			assert.Equal(t, dt, a.DType())
		}
	}
}

func TestNewErrors(t *testing.T) {
	_, err := New(Shape{}, Int32)
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = New(Shape{3, 0}, Float32)
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = New(Shape{3}, DataType(9))
	assert.ErrorIs(t, err, ErrUnsupportedDType)

	assert.Panics(t, func() { MustNew(Shape{-1}, Int32) })
}

func TestShapeIsCopied(t *testing.T) {
	s := Shape{3, 2}
	a := MustNew(s, Int32)
	s[0] = 100
	assert.Equal(t, Shape{3, 2}, a.Shape())

	got := a.Shape()
	got[1] = 50
	assert.Equal(t, Shape{3, 2}, a.Shape())
}

func TestSetGetRoundTrip(t *testing.T) {
	a := MustNew(Shape{2, 3, 4}, Int32)
	f := MustNew(Shape{2, 3, 4}, Float32)

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				v := int32(i*100 + j*10 + k)
				require.NoError(t, a.Set(Int32Value(v), i, j, k))
				require.NoError(t, f.Set(Float32Value(float32(v)+0.5), i, j, k))
			}
		}
	}

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				v := int32(i*100 + j*10 + k)
				got, err := a.At(i, j, k)
				require.NoError(t, err)
				assert.Equal(t, v, got.Int32())

				gf, err := Get[float32](f, i, j, k)
				require.NoError(t, err)
				assert.Equal(t, float32(v)+0.5, gf)
			}
		}
	}
}

func TestSetGetExtremes(t *testing.T) {
	a := MustNew(Shape{2}, Int32)
	require.NoError(t, Put(a, int32(math.MaxInt32), 0))
	require.NoError(t, Put(a, int32(math.MinInt32), 1))
	v0, _ := Get[int32](a, 0)
	v1, _ := Get[int32](a, 1)
	assert.Equal(t, int32(math.MaxInt32), v0)
	assert.Equal(t, int32(math.MinInt32), v1)

	f := MustNew(Shape{1}, Float32)
	require.NoError(t, Put(f, float32(-3.25), 0))
	got, _ := Get[float32](f, 0)
	assert.Equal(t, float32(-3.25), got)
}

func TestAccessErrors(t *testing.T) {
	a := MustNew(Shape{3, 2}, Int32)

	_, err := a.At(1)
	assert.ErrorIs(t, err, ErrRankMismatch)
	_, err = a.At(3, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = a.At(0, -1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	assert.ErrorIs(t, a.Set(Int32Value(1), 0, 2), ErrOutOfRange)
	assert.ErrorIs(t, a.Set(Float32Value(1), 0, 0), ErrDTypeMismatch)

	_, err = Get[float32](a, 0, 0)
	assert.ErrorIs(t, err, ErrDTypeMismatch)
}

func TestRelease(t *testing.T) {
	a := MustNew(Shape{3, 2}, Int32)
	a.Release()
	assert.True(t, a.Released())
	assert.Nil(t, a.Data())

	// Second release is harmless.
	assert.NotPanics(t, a.Release)

	_, err := a.At(0, 0)
	assert.ErrorIs(t, err, ErrReleased)
	assert.ErrorIs(t, a.Fill(Int32Value(1)), ErrReleased)
	_, err = a.Sum()
	assert.ErrorIs(t, err, ErrReleased)
	_, err = a.Slice([][]int{{0}, {0}})
	assert.ErrorIs(t, err, ErrReleased)
	_, _, err = a.Filter(func(Scalar) bool { return true }, nil, Any)
	assert.ErrorIs(t, err, ErrReleased)
	_, err = a.Text()
	assert.ErrorIs(t, err, ErrReleased)

	// Metadata stays readable.
	assert.Equal(t, 6, a.NumElements())
}

func TestCloneIsIndependent(t *testing.T) {
	a, err := Full(Shape{2, 2}, int32(1))
	require.NoError(t, err)
	b, err := a.Clone()
	require.NoError(t, err)

	require.NoError(t, Put(b, int32(9), 0, 0))
	v, _ := Get[int32](a, 0, 0)
	assert.Equal(t, int32(1), v)

	a.Release()
	w, err := Get[int32](b, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(9), w)
}

func TestScalar(t *testing.T) {
	i := Int32Value(-7)
	assert.Equal(t, Int32, i.DType())
	assert.Equal(t, "-7", i.String())
	assert.InDelta(t, -7.0, i.Float64(), 0)
	assert.Panics(t, func() { i.Float32() })

	f := Float32Value(1.5)
	assert.Equal(t, "1.500000", f.String())
	assert.Panics(t, func() { f.Int32() })

	var zero Scalar
	assert.Equal(t, Int32, zero.DType())
	assert.Equal(t, int32(0), zero.Int32())

	s, err := ScalarOf(Int32, 12)
	require.NoError(t, err)
	assert.Equal(t, int32(12), s.Int32())
	_, err = ScalarOf(Int32, 1.5)
	assert.ErrorIs(t, err, ErrDTypeMismatch)
	_, err = ScalarOf(Int32, 1e12)
	assert.ErrorIs(t, err, ErrDTypeMismatch)
	s, err = ScalarOf(Float32, 2.25)
	require.NoError(t, err)
	assert.Equal(t, float32(2.25), s.Float32())
}
