// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"testing"

	"cogentcore.org/tensor/base/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqDense returns a dense tensor with values 0, 1, 2... in row-major order.
func seqDense(t *testing.T, sizes ...int) *Dense[float64] {
	t.Helper()
	tsr, err := NewDense[float64](sizes...)
	require.NoError(t, err)
	for i := range tsr.Values {
		tsr.Values[i] = float64(i)
	}
	return tsr
}

func TestDense(t *testing.T) {
	tsr, err := NewDense[float64](3, 4)
	require.NoError(t, err)
	assert.Equal(t, 12, tsr.Len())
	assert.Equal(t, 2, tsr.NumDims())
	assert.Equal(t, 4, tsr.DimSize(1))
	assert.Equal(t, Double, tsr.Kind())
	assert.True(t, IsStandard(tsr.Index()))

	require.NoError(t, tsr.SetValue(2.5, 1, 2))
	v, err := tsr.Value(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
	assert.Equal(t, 2.5, tsr.Value1D(6))

	_, err = tsr.Value(1)
	assert.ErrorIs(t, err, ErrArity)
	_, err = tsr.Value(3, 0)
	assert.ErrorIs(t, err, ErrRange)
	assert.ErrorIs(t, tsr.SetValue(1, 0, -1), ErrRange)
	assert.ErrorIs(t, tsr.SetValue(1, 0, 0, 0), ErrArity)

	_, err = NewDense[int32](2, 0)
	assert.ErrorIs(t, err, ErrInvalidShape)

	cl := tsr.Clone()
	cl.SetValue1D(9, 6)
	assert.Equal(t, 2.5, tsr.Value1D(6))
}

func TestScalar(t *testing.T) {
	tsr, err := NewDense[int64]()
	require.NoError(t, err)
	assert.Equal(t, 1, tsr.Len())
	assert.Equal(t, 0, tsr.NumDims())
	require.NoError(t, tsr.SetValue(5))
	v, err := tsr.Value()
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)
	_, err = tsr.Value(0)
	assert.ErrorIs(t, err, ErrArity)
}

func TestDenseFromValues(t *testing.T) {
	vals := []int32{1, 2, 3, 4, 5, 6}
	tsr, err := NewDenseFromValues(vals, 2, 3)
	require.NoError(t, err)
	v, err := tsr.Value(1, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(4), v)

	vals[5] = 60
	v, err = tsr.Value(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(60), v)

	_, err = NewDenseFromValues(vals, 4)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	flat, err := NewDenseFromValues(vals)
	require.NoError(t, err)
	assert.Equal(t, []int{6}, flat.ShapeSizes())
}

func TestBounds(t *testing.T) {
	assert.NoError(t, CheckCoords([]int{2, 3}, []int{1, 2}))
	assert.ErrorIs(t, CheckCoords([]int{2, 3}, []int{1}), ErrArity)
	assert.ErrorIs(t, CheckCoords([]int{2, 3}, []int{2, 0}), ErrRange)
	assert.ErrorIs(t, CheckCoords([]int{2, 3}, []int{0, -1}), ErrRange)
	assert.NoError(t, CheckCoords(nil, nil))
	assert.ErrorIs(t, CheckSizes([]int{2, -1}), ErrInvalidShape)

	n, err := CellCount([]int{1 << 20, 1 << 20}, 1<<62)
	require.NoError(t, err)
	assert.Equal(t, int64(1<<40), n)
	_, err = CellCount([]int{1 << 32, 1 << 32}, 1<<62)
	assert.ErrorIs(t, err, ErrCapacityOverflow)
}

func TestShape(t *testing.T) {
	sh, err := NewShape(2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 24, sh.Len())
	assert.Equal(t, []int{12, 4, 1}, sh.Strides)
	assert.Equal(t, 23, sh.IndexTo1D(1, 2, 3))
	assert.Equal(t, []int{1, 0, 2}, sh.IndexFrom1D(14))
	assert.Equal(t, "[2, 3, 4]", sh.String())

	var all [][]int
	for c := range Coords([]int{2, 2}) {
		all = append(all, append([]int{}, c...))
	}
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, all)

	n := 0
	for range Coords(nil) {
		n++
	}
	assert.Equal(t, 1, n)
}

func TestKind(t *testing.T) {
	assert.Equal(t, Float, KindOf[float32]())
	assert.Equal(t, Char, KindOf[uint16]())
	assert.Equal(t, Byte, KindOf[int8]())
	assert.Equal(t, Object, KindOf[string]())
	assert.Equal(t, Object, KindOf[int]())
	assert.Equal(t, "object", Object.String())
	assert.Equal(t, 8, Long.Size())
	assert.Equal(t, 0, Object.Size())
	assert.False(t, Char.IsNumeric())
	assert.True(t, Short.IsInteger())
	assert.True(t, Float.IsFloat())

	k, err := ParseKind("Double")
	require.NoError(t, err)
	assert.Equal(t, Double, k)
	_, err = ParseKind("quad")
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestMetadata(t *testing.T) {
	tsr := seqDense(t, 2, 2)
	tsr.Metadata().SetName("input")
	tsr.Metadata().Set("units", "mm")
	assert.Equal(t, "input double [2, 2]", tsr.Label())

	tr, err := Transpose[float64](tsr, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, "input", tr.Metadata().Name())

	cl, err := Clone[float64](tr)
	require.NoError(t, err)
	u, err := metadata.Get[string](*cl.Metadata(), "units")
	require.NoError(t, err)
	assert.Equal(t, "mm", u)
	cl.Metadata().Set("units", "cm")
	u, err = metadata.Get[string](*tsr.Metadata(), "units")
	require.NoError(t, err)
	assert.Equal(t, "mm", u)
}

func TestSprint(t *testing.T) {
	m, err := NewDenseFromValues([]int32{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, "Tensor int [2, 2]\n[0]:\t1 2\n[1]:\t3 4\n", m.String())

	v, err := NewDenseFromValues([]float64{1.5, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "Tensor double [3]\n1.5 2 3\n", v.String())

	s, err := NewDenseFilled[int64](5)
	require.NoError(t, err)
	assert.Equal(t, "Tensor long []\n5\n", s.String())

	c := seqDense(t, 2, 2, 2)
	assert.Contains(t, c.String(), "[..., 1]:\n")
}

func TestShells(t *testing.T) {
	tsr := seqDense(t, 3, 4)
	d2, err := AsD2[float64](tsr)
	require.NoError(t, err)
	require.NoError(t, d2.Set(30, 1, 1))
	v, err := d2.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 30.0, v)
	v, err = tsr.Value(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 30.0, v)

	_, err = d2.At(3, 0)
	assert.ErrorIs(t, err, ErrRange)
	_, err = AsD3[float64](tsr)
	assert.ErrorIs(t, err, ErrArity)

	s, err := NewUniform(4.0)
	require.NoError(t, err)
	d0, err := AsD0[float64](s)
	require.NoError(t, err)
	v, err = d0.At()
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
	assert.ErrorIs(t, d0.Set(1), ErrImmutable)

	big := seqDense(t, 1, 1, 1, 1, 1, 1, 1, 1, 2)
	d9, err := AsD9[float64](big)
	require.NoError(t, err)
	v, err = d9.At(0, 0, 0, 0, 0, 0, 0, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestShellsDenseAllocs(t *testing.T) {
	tsr := seqDense(t, 3, 4)
	d2, err := AsD2[float64](tsr)
	require.NoError(t, err)
	var v float64
	allocs := testing.AllocsPerRun(1000, func() {
		v, _ = d2.At(1, 2)
	})
	assert.Equal(t, 0.0, allocs)
	assert.Equal(t, 6.0, v)
	allocs = testing.AllocsPerRun(1000, func() {
		_ = d2.Set(7, 2, 3)
	})
	assert.Equal(t, 0.0, allocs)
	assert.Equal(t, 7.0, tsr.Values[11])

	sc, err := NewDense[float64]()
	require.NoError(t, err)
	d0, err := AsD0[float64](sc)
	require.NoError(t, err)
	require.NoError(t, d0.Set(5))
	allocs = testing.AllocsPerRun(1000, func() {
		v, _ = d0.At()
	})
	assert.Equal(t, 0.0, allocs)
	assert.Equal(t, 5.0, v)

	// out of range falls back to the checked path
	_, err = d2.At(0, 4)
	assert.ErrorIs(t, err, ErrRange)
	assert.ErrorIs(t, d2.Set(1, -1, 0), ErrRange)
}
