package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillAndSumInt32(t *testing.T) {
	a := MustNew(Shape{3, 2}, Int32)
	require.NoError(t, a.Fill(Int32Value(10)))

	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			v, err := Get[int32](a, i, j)
			require.NoError(t, err)
			assert.Equal(t, int32(10), v)
		}
	}

	sum, err := a.Sum()
	require.NoError(t, err)
	assert.Equal(t, 60.0, sum)
}

func TestFillSumProperty(t *testing.T) {
	tests := []struct {
		shape Shape
		value float64
	}{
		{Shape{1}, 3},
		{Shape{4}, -2},
		{Shape{3, 3}, 10},
		{Shape{3, 3, 3}, 7},
		{Shape{2, 5, 2, 3}, 1},
	}

	for _, tt := range tests {
		n := float64(tt.shape.NumElements())

		ai := MustNew(tt.shape, Int32)
		require.NoError(t, ai.Fill(Int32Value(int32(tt.value))))
		si, err := ai.Sum()
		require.NoError(t, err)
		assert.Equal(t, n*tt.value, si, "int32 Shape%v", tt.shape)

		af := MustNew(tt.shape, Float32)
		require.NoError(t, af.Fill(Float32Value(float32(tt.value)+0.1)))
		sf, err := af.Sum()
		require.NoError(t, err)
		assert.InDelta(t, n*(tt.value+0.1), sf, 1e-4, "float32 Shape%v", tt.shape)
	}
}

func TestFillDTypeMismatch(t *testing.T) {
	a := MustNew(Shape{2}, Float32)
	assert.ErrorIs(t, a.Fill(Int32Value(1)), ErrDTypeMismatch)
}

func TestSumWidensInt32(t *testing.T) {
	a, err := FromSlice([]int32{2147483647, 2147483647}, Shape{2})
	require.NoError(t, err)
	sum, err := a.Sum()
	require.NoError(t, err)
	assert.Equal(t, 2*2147483647.0, sum)
}

func TestSumRowColumn(t *testing.T) {
	// [[1 2 3]
	//  [4 5 6]]
	a, err := FromSlice([]int32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	r0, err := a.SumRow(0)
	require.NoError(t, err)
	assert.Equal(t, 6.0, r0)
	r1, _ := a.SumRow(1)
	assert.Equal(t, 15.0, r1)

	c0, err := a.SumColumn(0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, c0)
	c2, _ := a.SumColumn(2)
	assert.Equal(t, 9.0, c2)

	_, err = a.SumRow(2)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = a.SumColumn(3)
	assert.ErrorIs(t, err, ErrOutOfRange)

	v, _ := FromSlice([]float32{1, 2}, Shape{2})
	_, err = v.SumColumn(0)
	assert.ErrorIs(t, err, ErrRankMismatch)
}

func TestSumColumnRank3(t *testing.T) {
	// Shape [2, 2, 2]: column 1 covers flat offsets 2,3 and 6,7.
	a, err := Arange[float32](0, 8)
	require.NoError(t, err)
	data, _ := Values[float32](a)
	b, err := FromSlice(data, Shape{2, 2, 2})
	require.NoError(t, err)

	c1, err := b.SumColumn(1)
	require.NoError(t, err)
	assert.InDelta(t, 2+3+6+7, c1, 1e-6)

	r1, err := b.SumRow(1)
	require.NoError(t, err)
	assert.InDelta(t, 4+5+6+7, r1, 1e-6)
}
