package ndarray

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	a, err := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, Float32, a.DType())
	v, _ := Get[float32](a, 1, 0)
	assert.Equal(t, float32(4), v)

	_, err = FromSlice([]int32{1, 2, 3}, Shape{2, 2})
	assert.ErrorIs(t, err, ErrInvalidShape)
	_, err = FromSlice([]int32{}, Shape{0})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestFromSliceCopies(t *testing.T) {
	data := []int32{1, 2}
	a, err := FromSlice(data, Shape{2})
	require.NoError(t, err)
	data[0] = 99
	v, _ := Get[int32](a, 0)
	assert.Equal(t, int32(1), v)
}

func TestZerosAndFull(t *testing.T) {
	z, err := Zeros(Shape{2, 2}, Float32)
	require.NoError(t, err)
	s, _ := z.Sum()
	assert.Equal(t, 0.0, s)

	f, err := Full(Shape{3, 3, 3}, int32(10))
	require.NoError(t, err)
	v, _ := Get[int32](f, 2, 1, 1)
	assert.Equal(t, int32(10), v)
}

func TestArange(t *testing.T) {
	a, err := Arange[int32](3, 7)
	require.NoError(t, err)
	got, _ := Values[int32](a)
	assert.Equal(t, []int32{3, 4, 5, 6}, got)

	_, err = Arange[int32](5, 5)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestRandIntDeterministic(t *testing.T) {
	a, err := RandInt(Shape{5, 2}, 0, 50, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := RandInt(Shape{5, 2}, 0, 50, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	va, _ := Values[int32](a)
	vb, _ := Values[int32](b)
	assert.Equal(t, va, vb)
	for _, v := range va {
		assert.GreaterOrEqual(t, v, int32(0))
		assert.Less(t, v, int32(50))
	}

	_, err = RandInt(Shape{2}, 5, 5, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestRandIntFullRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a, err := RandInt(Shape{64}, math.MinInt32, math.MaxInt32, rng)
	require.NoError(t, err)
	vals, _ := Values[int32](a)
	for _, v := range vals {
		assert.Less(t, v, int32(math.MaxInt32))
	}

	b, err := RandInt(Shape{8}, -1, 0, rng)
	require.NoError(t, err)
	got, _ := Values[int32](b)
	for _, v := range got {
		assert.Equal(t, int32(-1), v)
	}
}

func TestRand(t *testing.T) {
	a, err := Rand(Shape{10}, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	vals, _ := Values[float32](a)
	for _, v := range vals {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.Less(t, v, float32(1))
	}
}
