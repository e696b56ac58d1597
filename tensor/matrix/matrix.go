// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matrix presents 2D numeric tensors as gonum matrices,
// so that gonum/mat linear algebra can read and write tensor values
// in place, and provides decompositions returning tensors.
package matrix

import (
	"fmt"

	"cogentcore.org/tensor/base/errors"
	"cogentcore.org/tensor/tensor"
	"gonum.org/v1/gonum/mat"
)

// Matrix provides a view of a 2D tensor as a gonum [mat.Matrix]
// and [mat.Mutable]. Values are converted to and from float64
// with [tensor.Converter].
type Matrix[T tensor.Numeric] struct {
	// Tensor is the 2D tensor holding the values.
	Tensor tensor.Tensor[T]

	to   func(T) float64
	from func(float64) T
}

// New returns a new [Matrix] view of the given 2D tensor,
// or an error wrapping [mat.ErrShape] if it is not 2D.
func New[T tensor.Numeric](tsr tensor.Tensor[T]) (*Matrix[T], error) {
	if nd := tsr.NumDims(); nd != 2 {
		return nil, fmt.Errorf("matrix.New: tensor must have 2 dimensions, has %d: %w", nd, mat.ErrShape)
	}
	return &Matrix[T]{Tensor: tsr, to: tensor.Converter[T, float64](), from: tensor.Converter[float64, T]()}, nil
}

// Dims is the gonum/mat.Matrix interface method for returning the
// dimension sizes of the 2D Matrix.  Assumes Row-major ordering.
func (mx *Matrix[T]) Dims() (r, c int) {
	return mx.Tensor.DimSize(0), mx.Tensor.DimSize(1)
}

// At is the gonum/mat.Matrix interface method for returning 2D
// matrix element at given row, column index. It panics with
// [mat.ErrIndexOutOfRange] for invalid indexes.
func (mx *Matrix[T]) At(i, j int) float64 {
	v, err := mx.Tensor.Value(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}
	return mx.to(v)
}

// T is the gonum/mat.Matrix transpose method.
// It performs an implicit transpose by returning the receiver inside a Transpose.
func (mx *Matrix[T]) T() mat.Matrix {
	return mat.Transpose{Matrix: mx}
}

// Set is the gonum/mat.Mutable method for setting the element at
// given row, column index. It panics with [mat.ErrIndexOutOfRange]
// for invalid indexes, and with the tensor error for other failures,
// such as [tensor.ErrImmutable].
func (mx *Matrix[T]) Set(i, j int, v float64) {
	err := mx.Tensor.SetValue(mx.from(v), i, j)
	switch {
	case err == nil:
	case errors.Is(err, tensor.ErrRange), errors.Is(err, tensor.ErrArity):
		panic(mat.ErrIndexOutOfRange)
	default:
		panic(err)
	}
}

// Symmetric is a [Matrix] view of a square 2D tensor
// as a gonum [mat.Symmetric] matrix.
// The values are assumed to be symmetric.
type Symmetric[T tensor.Numeric] struct {
	Matrix[T]
}

// NewSymmetric returns a new [Symmetric] view of the given square
// 2D tensor, or an error wrapping [mat.ErrShape] or [mat.ErrSquare].
func NewSymmetric[T tensor.Numeric](tsr tensor.Tensor[T]) (*Symmetric[T], error) {
	mx, err := New(tsr)
	if err != nil {
		return nil, err
	}
	if r, c := mx.Dims(); r != c {
		return nil, fmt.Errorf("matrix.NewSymmetric: %d x %d: %w", r, c, mat.ErrSquare)
	}
	return &Symmetric[T]{Matrix: *mx}, nil
}

// SymmetricDim is the gonum/mat.Symmetric method for the size of the matrix.
func (sy *Symmetric[T]) SymmetricDim() int {
	return sy.Tensor.DimSize(0)
}

// Dense returns a copy of the given 2D tensor as a gonum [mat.Dense].
func Dense[T tensor.Numeric](tsr tensor.Tensor[T]) (*mat.Dense, error) {
	if nd := tsr.NumDims(); nd != 2 {
		return nil, fmt.Errorf("matrix.Dense: tensor must have 2 dimensions, has %d: %w", nd, mat.ErrShape)
	}
	vals, err := tensor.AsFloat64Slice(tsr)
	if err != nil {
		return nil, err
	}
	return mat.NewDense(tsr.DimSize(0), tsr.DimSize(1), vals), nil
}

// FromMatrix returns a new 2D float64 tensor with a copy of
// the values of the given gonum matrix.
func FromMatrix(m mat.Matrix) (*tensor.Dense[float64], error) {
	r, c := m.Dims()
	tsr, err := tensor.NewDense[float64](r, c)
	if err != nil {
		return nil, err
	}
	for i := range r {
		for j := range c {
			tsr.Values[i*c+j] = m.At(i, j)
		}
	}
	return tsr, nil
}

// check for interface impl
var (
	_ mat.Mutable   = (*Matrix[float64])(nil)
	_ mat.Symmetric = (*Symmetric[float32])(nil)
)
