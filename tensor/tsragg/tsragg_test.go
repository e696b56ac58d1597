// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsragg

import (
	"math"
	"testing"

	"cogentcore.org/tensor/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgg(t *testing.T) {
	tsr, err := tensor.NewDenseFromValues([]float64{1, 2, 3, 4, math.NaN()})
	require.NoError(t, err)

	cnt, err := Count[float64](tsr)
	require.NoError(t, err)
	assert.Equal(t, 4.0, cnt)
	sum, err := Sum[float64](tsr)
	require.NoError(t, err)
	assert.Equal(t, 10.0, sum)
	prod, err := Prod[float64](tsr)
	require.NoError(t, err)
	assert.Equal(t, 24.0, prod)
	mx, err := Max[float64](tsr)
	require.NoError(t, err)
	assert.Equal(t, 4.0, mx)
	mn, err := Min[float64](tsr)
	require.NoError(t, err)
	assert.Equal(t, 1.0, mn)
	mean, err := Mean[float64](tsr)
	require.NoError(t, err)
	assert.Equal(t, 2.5, mean)
	vr, err := Var[float64](tsr)
	require.NoError(t, err)
	assert.InDelta(t, 1.6666666666666667, vr, 1e-12)
	std, err := Std[float64](tsr)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(vr), std, 1e-12)
}

func TestDescribe(t *testing.T) {
	id, err := tensor.NewIdentity[int32](3, 3)
	require.NoError(t, err)
	st, err := Describe[int32](id)
	require.NoError(t, err)
	assert.Equal(t, 9.0, st.Count)
	assert.Equal(t, 3.0, st.Sum)
	assert.Equal(t, 0.0, st.Min)
	assert.Equal(t, 1.0, st.Max)
	assert.Contains(t, st.String(), "count=9 sum=3")

	cv, err := tensor.CastAny(id, tensor.Double)
	require.NoError(t, err)
	ast, err := DescribeAny(cv)
	require.NoError(t, err)
	assert.Equal(t, st, ast)

	_, err = DescribeAny("x")
	assert.ErrorIs(t, err, tensor.ErrUnsupportedKind)

	nan, err := tensor.NewUniform(math.NaN(), 2)
	require.NoError(t, err)
	st, err = Describe[float64](nan)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, st)
}
