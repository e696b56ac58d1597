// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tensor provides typed, rectangular, n-dimensional containers
// addressed by 0-based coordinates, with interchangeable storage
// (dense, sparse, uniform, identity, zero), zero-copy views through
// [Index] composition, and numeric cast views converting between
// element kinds.
package tensor

import (
	"cogentcore.org/tensor/base/metadata"
)

// Tensor is the interface for n-dimensional tensors with elements of type T.
// Per C / Go / Python conventions, indexes are Row-Major, ordered from
// outer to inner left-to-right, so the inner-most is right-most.
// Every dimension has size >= 1; a tensor with no dimensions holds
// a single scalar value.
//
// Only the methods here need to be implemented by a storage backend:
// bulk access ([GetAll], [SetAll], [SetAllFrom]), iteration ([Iterate])
// and views ([NewView]) are generic functions written in terms of them.
// Tensors are not safe for concurrent mutation: writers through different
// views of the same tensor must be serialized by the caller.
type Tensor[T any] interface {
	// ShapeSizes returns the sizes of the dimensions.
	// The returned slice must not be modified.
	ShapeSizes() []int

	// NumDims returns the total number of dimensions (rank).
	NumDims() int

	// DimSize returns size of given dimension.
	DimSize(dim int) int

	// Len returns the number of elements in the tensor,
	// which is the product of all shape dimensions.
	Len() int

	// Kind returns the element kind.
	Kind() Kind

	// Value returns the value at given coordinates, or an [ErrArity]
	// or [ErrRange] error if the coordinates are not valid.
	Value(i ...int) (T, error)

	// SetValue sets the value at given coordinates. It returns an
	// [ErrArity] or [ErrRange] error for invalid coordinates, and
	// [ErrImmutable] for tensors that cannot be modified.
	SetValue(val T, i ...int) error

	// Index returns the index describing the shape of this tensor
	// and how it maps onto the tensor that holds its values.
	Index() Index

	// Metadata returns the metadata for this tensor, which can be used
	// to encode names, units, and other information. Views share
	// the metadata of the tensor they are a view onto.
	Metadata() *metadata.Data
}

// Unwrapper is implemented by tensors that are views onto another tensor.
type Unwrapper interface {
	// Unwrap returns the concrete tensor holding the values.
	Unwrap() any
}

// Innermost follows [Unwrapper] views down to the concrete tensor
// holding the values. Tensors that are not views are returned as is.
func Innermost(tsr any) any {
	for {
		u, ok := tsr.(Unwrapper)
		if !ok {
			return tsr
		}
		tsr = u.Unwrap()
	}
}

// Array is a bulk container of values in row-major order, used to
// move values in and out of tensors with [GetAll] and [SetAll].
type Array[T any] struct {

	// Sizes of the dimensions.
	Sizes []int

	// Values in row-major order: len(Values) is the product of Sizes.
	Values []T
}

// NewArray returns a zero-valued [Array] with given sizes.
func NewArray[T any](sizes ...int) (*Array[T], error) {
	n, err := checkedLen(sizes)
	if err != nil {
		return nil, err
	}
	return &Array[T]{Sizes: append([]int{}, sizes...), Values: make([]T, n)}, nil
}

// Len returns the number of values.
func (a *Array[T]) Len() int { return len(a.Values) }
