// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"slices"
)

// Dense is a mutable tensor storing every value in a row-major slice.
type Dense[T any] struct {
	Base[T]

	// Values in row-major order.
	Values []T
}

// Float64 is an alias for Dense[float64].
type Float64 = Dense[float64]

// Float32 is an alias for Dense[float32].
type Float32 = Dense[float32]

// Int64 is an alias for Dense[int64].
type Int64 = Dense[int64]

// Int32 is an alias for Dense[int32].
type Int32 = Dense[int32]

// NewDense returns a new dense tensor of zero values
// with the given sizes per dimension (shape).
func NewDense[T any](sizes ...int) (*Dense[T], error) {
	tsr := &Dense[T]{}
	if err := tsr.init(sizes); err != nil {
		return nil, err
	}
	tsr.Values = make([]T, tsr.Len())
	return tsr, nil
}

// NewDenseFilled returns a new dense tensor with all values set to val.
func NewDenseFilled[T any](val T, sizes ...int) (*Dense[T], error) {
	tsr, err := NewDense[T](sizes...)
	if err != nil {
		return nil, err
	}
	for i := range tsr.Values {
		tsr.Values[i] = val
	}
	return tsr, nil
}

// NewDenseFromValues returns a new dense tensor with given sizes
// that wraps the given row-major values, which are not copied.
// With no sizes, a 1D tensor of len(vals) is returned.
func NewDenseFromValues[T any](vals []T, sizes ...int) (*Dense[T], error) {
	if len(sizes) == 0 {
		sizes = []int{len(vals)}
	}
	tsr := &Dense[T]{}
	if err := tsr.init(sizes); err != nil {
		return nil, err
	}
	if tsr.Len() != len(vals) {
		return nil, fmt.Errorf("tensor.NewDenseFromValues: %d values for shape %s: %w", len(vals), SizesString(sizes), ErrShapeMismatch)
	}
	tsr.Values = vals
	return tsr, nil
}

// String satisfies the fmt.Stringer interface for string of tensor data.
func (tsr *Dense[T]) String() string { return Sprint[T](tsr) }

func (tsr *Dense[T]) Value(i ...int) (T, error) {
	if err := CheckCoords(tsr.shape.Sizes, i); err != nil {
		var z T
		return z, err
	}
	return tsr.cell(i), nil
}

func (tsr *Dense[T]) SetValue(val T, i ...int) error {
	if err := CheckCoords(tsr.shape.Sizes, i); err != nil {
		return err
	}
	return tsr.setCell(val, i)
}

func (tsr *Dense[T]) cell(i []int) T { return tsr.Values[tsr.shape.IndexTo1D(i...)] }

func (tsr *Dense[T]) setCell(val T, i []int) error {
	tsr.Values[tsr.shape.IndexTo1D(i...)] = val
	return nil
}

// Value1D returns the value at given flat row-major index,
// which is not checked beyond the slice bounds.
func (tsr *Dense[T]) Value1D(i int) T { return tsr.Values[i] }

// SetValue1D sets the value at given flat row-major index.
func (tsr *Dense[T]) SetValue1D(val T, i int) { tsr.Values[i] = val }

// Clone returns a copy of this tensor with its own values and metadata.
func (tsr *Dense[T]) Clone() *Dense[T] {
	cl := &Dense[T]{Values: slices.Clone(tsr.Values)}
	cl.init(tsr.shape.Sizes)
	cl.meta.Copy(tsr.meta)
	return cl
}

func (tsr *Dense[T]) getAll(dst []T) { copy(dst, tsr.Values) }
func (tsr *Dense[T]) setAll(src []T) { copy(tsr.Values, src) }

// check for interface impl
var _ Tensor[float64] = (*Dense[float64])(nil)
