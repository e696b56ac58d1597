// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterate(t *testing.T) {
	a := seqDense(t, 2, 2, 3)
	var ks []int
	for k, sub := range Iterate[float64](a) {
		ks = append(ks, k)
		assert.Equal(t, []int{2, 2}, sub.ShapeSizes())
		for i := range 2 {
			for j := range 2 {
				assert.Equal(t, valueAt[float64](t, a, i, j, k), valueAt(t, sub, i, j))
			}
		}
	}
	assert.Equal(t, []int{0, 1, 2}, ks)

	b := seqDense(t, 3)
	n := 0
	for k, sub := range Iterate[float64](b) {
		assert.Equal(t, 0, sub.NumDims())
		assert.Equal(t, float64(k), valueAt(t, sub))
		n++
	}
	assert.Equal(t, 3, n)

	s := seqDense(t)
	for range Iterate[float64](s) {
		t.Fatal("rank 0 tensor yielded a sub-tensor")
	}

	n = 0
	for range Iterate[float64](a) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestGetSetAll(t *testing.T) {
	a := seqDense(t, 2, 3)
	vals, err := Values[float64](a)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, vals.Sizes)
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5}, vals.Values)

	tr, err := Transpose[float64](a, 1, 0)
	require.NoError(t, err)
	tv, err := Values[float64](tr)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3, 1, 4, 2, 5}, tv.Values)

	src := &Array[float64]{Sizes: []int{3, 2}, Values: []float64{10, 11, 12, 13, 14, 15}}
	require.NoError(t, SetAll[float64](tr, src))
	assert.Equal(t, []float64{10, 12, 14, 11, 13, 15}, a.Values)

	assert.ErrorIs(t, SetAll[float64](a, src), ErrShapeMismatch)
	bad := &Array[float64]{Sizes: []int{2, 3}, Values: []float64{1}}
	assert.ErrorIs(t, SetAll[float64](a, bad), ErrShapeMismatch)

	sp, err := NewSparse[float64](3, 2)
	require.NoError(t, err)
	require.NoError(t, SetAllFrom[float64](sp, tr))
	sv, err := Values[float64](sp)
	require.NoError(t, err)
	assert.Equal(t, src.Values, sv.Values)
	assert.ErrorIs(t, SetAllFrom[float64](sp, a), ErrShapeMismatch)

	u, err := NewUniform(1.0, 3, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, SetAllFrom[float64](u, sp), ErrImmutable)
}

// TestRoundTrip sets all values from an array and reads them back,
// for each mutable backend.
func TestRoundTrip(t *testing.T) {
	in := &Array[int16]{Sizes: []int{2, 2, 2}, Values: []int16{1, -2, 3, -4, 5, -6, 7, -8}}
	for _, name := range []string{"dense", "sparse"} {
		f, ok := NewFactory[int16](name)
		require.True(t, ok)
		tsr, err := f.Empty(in.Sizes...)
		require.NoError(t, err)
		require.NoError(t, SetAll(tsr, in))
		out, err := Values(tsr)
		require.NoError(t, err, name)
		assert.Equal(t, in, out, name)
	}
}

func TestClone(t *testing.T) {
	a := seqDense(t, 2, 3)
	tr, err := Transpose[float64](a, 1, 0)
	require.NoError(t, err)
	cl, err := Clone[float64](tr)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, cl.ShapeSizes())
	assert.Equal(t, []float64{0, 3, 1, 4, 2, 5}, cl.Values)
	cl.Values[0] = 100
	assert.Equal(t, 0.0, a.Values[0])
}

func TestAs1DSqueeze(t *testing.T) {
	a := seqDense(t, 2, 1, 3)
	flat, err := As1D[float64](a)
	require.NoError(t, err)
	assert.Equal(t, []int{6}, flat.ShapeSizes())
	assert.Equal(t, 4.0, valueAt(t, flat, 4))

	sq, err := Squeeze[float64](a)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, sq.ShapeSizes())
	assert.Equal(t, 5.0, valueAt(t, sq, 1, 2))

	b := seqDense(t, 4)
	same, err := Squeeze[float64](b)
	require.NoError(t, err)
	assert.Same(t, b, same)

	one := seqDense(t, 1, 1)
	s0, err := Squeeze[float64](one)
	require.NoError(t, err)
	assert.Equal(t, 0, s0.NumDims())
	assert.Equal(t, 0.0, valueAt(t, s0))
}
