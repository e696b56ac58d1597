// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package tsragg provides aggregation functions (Sum, Mean, etc) that
operate directly on numeric tensor data of any kind, including views
and cast views, using float64 conversions of the values.
*/
package tsragg

import (
	"fmt"
	"math"

	"cogentcore.org/tensor/tensor"
)

// AggFunc is an aggregation function that incrementally updates agg value
// from each element in the tensor in turn -- returns new agg value that
// will be passed into next item as agg
type AggFunc func(idx int, val float64, agg float64) float64

// Agg applies given aggregation function to each element in the tensor
// in row-major order (skipping NaN elements), using float64 conversions of the values.
// init is the initial value for the agg variable. returns final aggregate value
func Agg[T tensor.Numeric](tsr tensor.Tensor[T], ini float64, fun AggFunc) (float64, error) {
	vals, err := tensor.AsFloat64Slice(tsr)
	if err != nil {
		return 0, err
	}
	return agg(vals, ini, fun), nil
}

func agg(vals []float64, ini float64, fun AggFunc) float64 {
	ag := ini
	for j, val := range vals {
		if !math.IsNaN(val) {
			ag = fun(j, val, ag)
		}
	}
	return ag
}

func countFunc(idx int, val float64, agg float64) float64 { return agg + 1 }
func sumFunc(idx int, val float64, agg float64) float64   { return agg + val }
func prodFunc(idx int, val float64, agg float64) float64  { return agg * val }
func maxFunc(idx int, val float64, agg float64) float64   { return math.Max(agg, val) }
func minFunc(idx int, val float64, agg float64) float64   { return math.Min(agg, val) }

// Count returns the count of non-NaN elements in given Tensor.
func Count[T tensor.Numeric](tsr tensor.Tensor[T]) (float64, error) {
	return Agg(tsr, 0, countFunc)
}

// Sum returns the sum of non-NaN elements in given Tensor.
func Sum[T tensor.Numeric](tsr tensor.Tensor[T]) (float64, error) {
	return Agg(tsr, 0, sumFunc)
}

// Prod returns the product of non-NaN elements in given Tensor.
func Prod[T tensor.Numeric](tsr tensor.Tensor[T]) (float64, error) {
	return Agg(tsr, 1, prodFunc)
}

// Max returns the maximum of non-NaN elements in given Tensor.
func Max[T tensor.Numeric](tsr tensor.Tensor[T]) (float64, error) {
	return Agg(tsr, -math.MaxFloat64, maxFunc)
}

// Min returns the minimum of non-NaN elements in given Tensor.
func Min[T tensor.Numeric](tsr tensor.Tensor[T]) (float64, error) {
	return Agg(tsr, math.MaxFloat64, minFunc)
}

// Mean returns the mean of non-NaN elements in given Tensor.
func Mean[T tensor.Numeric](tsr tensor.Tensor[T]) (float64, error) {
	st, err := Describe(tsr)
	return st.Mean, err
}

// Var returns the sample variance of non-NaN elements in given Tensor.
func Var[T tensor.Numeric](tsr tensor.Tensor[T]) (float64, error) {
	st, err := Describe(tsr)
	return st.Var, err
}

// Std returns the sample standard deviation of non-NaN elements in given Tensor.
func Std[T tensor.Numeric](tsr tensor.Tensor[T]) (float64, error) {
	vr, err := Var(tsr)
	return math.Sqrt(vr), err
}

// Stats are the summary statistics of the non-NaN elements of a tensor.
type Stats struct {
	Count, Sum, Mean, Min, Max float64

	// Var is the sample variance, 0 for less than 2 elements.
	Var float64
}

// String returns the stats as name=value pairs.
func (st Stats) String() string {
	return fmt.Sprintf("count=%g sum=%g mean=%g min=%g max=%g std=%g", st.Count, st.Sum, st.Mean, st.Min, st.Max, math.Sqrt(st.Var))
}

// Describe returns the summary [Stats] of the given tensor,
// reading its values once.
func Describe[T tensor.Numeric](tsr tensor.Tensor[T]) (Stats, error) {
	var st Stats
	vals, err := tensor.AsFloat64Slice(tsr)
	if err != nil {
		return st, err
	}
	st.Count = agg(vals, 0, countFunc)
	if st.Count == 0 {
		return st, nil
	}
	st.Sum = agg(vals, 0, sumFunc)
	st.Min = agg(vals, math.MaxFloat64, minFunc)
	st.Max = agg(vals, -math.MaxFloat64, maxFunc)
	st.Mean = st.Sum / st.Count
	if st.Count > 1 {
		vr := agg(vals, 0, func(idx int, val float64, agg float64) float64 {
			dv := val - st.Mean
			return agg + dv*dv
		})
		st.Var = vr / (st.Count - 1)
	}
	return st, nil
}

// DescribeAny is the run-time version of [Describe] for a numeric
// tensor of any kind passed as any, such as the result of
// [tensor.CastAny]. It returns [tensor.ErrUnsupportedKind] otherwise.
func DescribeAny(tsr any) (Stats, error) {
	switch t := tsr.(type) {
	case tensor.Tensor[int8]:
		return Describe(t)
	case tensor.Tensor[int16]:
		return Describe(t)
	case tensor.Tensor[int32]:
		return Describe(t)
	case tensor.Tensor[int64]:
		return Describe(t)
	case tensor.Tensor[float32]:
		return Describe(t)
	case tensor.Tensor[float64]:
		return Describe(t)
	}
	return Stats{}, fmt.Errorf("tsragg.DescribeAny: %T: %w", tsr, tensor.ErrUnsupportedKind)
}
