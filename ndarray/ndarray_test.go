// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray_test

import (
	"testing"

	"github.com/born-ml/zumpy/ndarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicAPI(t *testing.T) {
	a, err := ndarray.New(ndarray.Shape{3, 2}, ndarray.Int32)
	require.NoError(t, err)
	defer a.Release()

	require.NoError(t, a.Fill(ndarray.Int32Value(10)))
	v, err := ndarray.Get[int32](a, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(10), v)

	s, err := a.Sum()
	require.NoError(t, err)
	assert.Equal(t, 60.0, s)

	_, err = a.At(3, 0)
	assert.ErrorIs(t, err, ndarray.ErrOutOfRange)
}

func TestPublicFilter(t *testing.T) {
	a, err := ndarray.FromSlice([]int32{37, 39, 32, 21, 49, 44, 0, 35, 12, 18}, ndarray.Shape{5, 2})
	require.NoError(t, err)

	rows, ok, err := ndarray.FilterBy(a, func(v int32) bool { return v > 20 }, nil, ndarray.All)
	require.NoError(t, err)
	require.True(t, ok)
	got, err := ndarray.Values[int32](rows)
	require.NoError(t, err)
	assert.Equal(t, []int32{37, 39, 32, 21, 49, 44}, got)
}
