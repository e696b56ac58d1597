// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"iter"
	"slices"
)

// bulkGetter is implemented by backends with a faster path
// for reading all values in row-major order.
type bulkGetter[T any] interface {
	getAll(dst []T)
}

// bulkSetter is implemented by backends with a faster path
// for writing all values in row-major order.
type bulkSetter[T any] interface {
	setAll(src []T)
}

// MustBeSameShape returns [ErrShapeMismatch] if the two shapes differ.
func MustBeSameShape(a, b []int) error {
	if !slices.Equal(a, b) {
		return fmt.Errorf("tensor: shapes %s and %s differ: %w", SizesString(a), SizesString(b), ErrShapeMismatch)
	}
	return nil
}

// GetAll copies all values of the tensor into dst, which must
// have the same sizes, in row-major order.
func GetAll[T any](tsr Tensor[T], dst *Array[T]) error {
	if err := MustBeSameShape(tsr.ShapeSizes(), dst.Sizes); err != nil {
		return err
	}
	if len(dst.Values) != tsr.Len() {
		return fmt.Errorf("tensor.GetAll: array has %d values for %d cells: %w", len(dst.Values), tsr.Len(), ErrShapeMismatch)
	}
	if bg, ok := tsr.(bulkGetter[T]); ok {
		bg.getAll(dst.Values)
		return nil
	}
	i := 0
	for c := range Coords(tsr.ShapeSizes()) {
		v, err := tsr.Value(c...)
		if err != nil {
			return err
		}
		dst.Values[i] = v
		i++
	}
	return nil
}

// Values returns all values of the tensor in row-major order,
// as a new [Array].
func Values[T any](tsr Tensor[T]) (*Array[T], error) {
	arr := &Array[T]{Sizes: slices.Clone(tsr.ShapeSizes()), Values: make([]T, tsr.Len())}
	return arr, GetAll(tsr, arr)
}

// SetAll sets all values of the tensor from src, which must
// have the same sizes, in row-major order.
func SetAll[T any](tsr Tensor[T], src *Array[T]) error {
	if err := MustBeSameShape(tsr.ShapeSizes(), src.Sizes); err != nil {
		return err
	}
	if len(src.Values) != tsr.Len() {
		return fmt.Errorf("tensor.SetAll: array has %d values for %d cells: %w", len(src.Values), tsr.Len(), ErrShapeMismatch)
	}
	if bs, ok := tsr.(bulkSetter[T]); ok {
		bs.setAll(src.Values)
		return nil
	}
	i := 0
	for c := range Coords(tsr.ShapeSizes()) {
		if err := tsr.SetValue(src.Values[i], c...); err != nil {
			return err
		}
		i++
	}
	return nil
}

// SetAllFrom sets all values of the tensor from the values
// of another tensor of the same shape.
func SetAllFrom[T any](tsr, src Tensor[T]) error {
	if err := MustBeSameShape(tsr.ShapeSizes(), src.ShapeSizes()); err != nil {
		return err
	}
	if bg, ok := src.(bulkGetter[T]); ok {
		if bs, ok := tsr.(bulkSetter[T]); ok {
			vals := make([]T, src.Len())
			bg.getAll(vals)
			bs.setAll(vals)
			return nil
		}
	}
	for c := range Coords(tsr.ShapeSizes()) {
		v, err := src.Value(c...)
		if err != nil {
			return err
		}
		if err := tsr.SetValue(v, c...); err != nil {
			return err
		}
	}
	return nil
}

// Iterate returns an iterator over the sub-tensors of the tensor
// along its last dimension, in ascending order of that dimension.
// Each sub-tensor is a view with one less dimension, so a 1D tensor
// yields scalar (0D) tensors, and a 0D tensor yields nothing.
func Iterate[T any](tsr Tensor[T]) iter.Seq2[int, Tensor[T]] {
	return func(yield func(int, Tensor[T]) bool) {
		nd := tsr.NumDims()
		if nd == 0 {
			return
		}
		last := nd - 1
		for i := range tsr.DimSize(last) {
			sub, err := SubTensor(tsr, last, i)
			if err != nil {
				return
			}
			if !yield(i, sub) {
				return
			}
		}
	}
}

// Clone returns a new [Dense] tensor with a copy of the
// values of the given tensor, which can be any view.
// The metadata is also copied.
func Clone[T any](tsr Tensor[T]) (*Dense[T], error) {
	cl, err := NewDense[T](tsr.ShapeSizes()...)
	if err != nil {
		return nil, err
	}
	if err := SetAllFrom[T](cl, tsr); err != nil {
		return nil, err
	}
	cl.meta.Copy(*tsr.Metadata())
	return cl, nil
}
