// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparse(t *testing.T) {
	sp, err := NewSparseFilled(-1.0, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 12, sp.Len())
	assert.Equal(t, int64(3), sp.Key(0, 1))
	assert.Equal(t, int64(11), sp.Key(2, 3))

	v, err := sp.Value(2, 3)
	require.NoError(t, err)
	assert.Equal(t, -1.0, v)
	stored, err := sp.Stored(2, 3)
	require.NoError(t, err)
	assert.False(t, stored)
	assert.Equal(t, 0, sp.NumStored())

	// writing the default value still stores an entry
	require.NoError(t, sp.SetValue(-1, 2, 3))
	stored, err = sp.Stored(2, 3)
	require.NoError(t, err)
	assert.True(t, stored)
	assert.Equal(t, 1, sp.NumStored())
	v, err = sp.Value(2, 3)
	require.NoError(t, err)
	assert.Equal(t, -1.0, v)

	require.NoError(t, sp.SetValue(5, 0, 1))
	v, err = sp.Value(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
	assert.Equal(t, 2, sp.NumStored())

	_, err = sp.Value(3, 0)
	assert.ErrorIs(t, err, ErrRange)
	_, err = sp.Stored(0)
	assert.ErrorIs(t, err, ErrArity)
	assert.ErrorIs(t, sp.SetValue(1, 0, 4), ErrRange)
	assert.Equal(t, 2, sp.NumStored())
}

func TestSparseCapacity(t *testing.T) {
	_, err := NewSparse[int8](1<<32, 1<<32)
	assert.ErrorIs(t, err, ErrCapacityOverflow)
	_, err = NewDense[int8](1<<32, 1<<32)
	assert.ErrorIs(t, err, ErrCapacityOverflow)

	sp, err := NewSparse[int8](1<<31, 1<<31)
	require.NoError(t, err)
	last := 1<<31 - 1
	require.NoError(t, sp.SetValue(7, last, last))
	v, err := sp.Value(last, last)
	require.NoError(t, err)
	assert.Equal(t, int8(7), v)
	v, err = sp.Value(last, 0)
	require.NoError(t, err)
	assert.Equal(t, int8(0), v)
	assert.Equal(t, 1, sp.NumStored())
}

func TestUniform(t *testing.T) {
	u, err := NewUniform[int16](7, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, Short, u.Kind())
	v, err := u.Value(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int16(7), v)
	assert.Equal(t, int16(7), u.Uniform())

	assert.ErrorIs(t, u.SetValue(1, 0, 0), ErrImmutable)
	assert.ErrorIs(t, u.SetValue(1, 5, 0), ErrRange)
	_, err = u.Value(0)
	assert.ErrorIs(t, err, ErrArity)

	s, err := NewUniform("a")
	require.NoError(t, err)
	assert.Equal(t, Object, s.Kind())
	sv, err := s.Value()
	require.NoError(t, err)
	assert.Equal(t, "a", sv)
	assert.ErrorIs(t, s.SetValue("b"), ErrImmutable)
	_, err = s.Value(0)
	assert.ErrorIs(t, err, ErrArity)
}

func TestIdentity(t *testing.T) {
	id, err := NewIdentity[float64](3, 3)
	require.NoError(t, err)
	for i := range 3 {
		for j := range 3 {
			v, err := id.Value(i, j)
			require.NoError(t, err)
			if i == j {
				assert.Equal(t, 1.0, v)
			} else {
				assert.Equal(t, 0.0, v)
			}
		}
	}
	assert.ErrorIs(t, id.SetValue(1, 0, 1), ErrImmutable)
	_, err = id.Value(3, 3)
	assert.ErrorIs(t, err, ErrRange)

	id3, err := NewIdentity[int32](2, 2, 2)
	require.NoError(t, err)
	v, err := id3.Value(1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(1), v)
	v, err = id3.Value(1, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(0), v)

	id0, err := NewIdentity[int64]()
	require.NoError(t, err)
	v0, err := id0.Value()
	require.NoError(t, err)
	assert.Equal(t, int64(1), v0)
	assert.ErrorIs(t, id0.SetValue(0), ErrImmutable)
}

func TestZero(t *testing.T) {
	z, err := NewZero[float32](2, 2)
	require.NoError(t, err)
	v, err := z.Value(1, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(0), v)
	assert.ErrorIs(t, z.SetValue(0, 1, 0), ErrImmutable)
	_, err = z.Value(1, 2)
	assert.ErrorIs(t, err, ErrRange)

	z0, err := NewZero[int8]()
	require.NoError(t, err)
	assert.ErrorIs(t, z0.SetValue(1), ErrImmutable)
	_, err = z0.Value(0)
	assert.ErrorIs(t, err, ErrArity)
}

func TestFactories(t *testing.T) {
	for _, name := range []string{"dense", "sparse", "uniform"} {
		f, ok := NewFactory[int32](name)
		require.True(t, ok, name)

		tsr, err := f.Filled(4, 2, 3)
		require.NoError(t, err, name)
		assert.Equal(t, []int{2, 3}, tsr.ShapeSizes(), name)
		vals, err := Values(tsr)
		require.NoError(t, err, name)
		assert.Equal(t, []int32{4, 4, 4, 4, 4, 4}, vals.Values, name)

		e, err := f.Empty(2)
		require.NoError(t, err, name)
		v, err := e.Value(1)
		require.NoError(t, err, name)
		assert.Equal(t, int32(0), v, name)

		bad, err := f.Empty(0)
		assert.ErrorIs(t, err, ErrInvalidShape, name)
		assert.Nil(t, bad, name)
	}
	_, ok := NewFactory[int32]("tiled")
	assert.False(t, ok)

	var f Factory[float64] = SparseFactory[float64]{}
	tsr, err := f.Filled(1.5, 4)
	require.NoError(t, err)
	sp, ok := tsr.(*Sparse[float64])
	require.True(t, ok)
	assert.Equal(t, 1.5, sp.Default)
}
