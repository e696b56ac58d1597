// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

// Factory creates new tensors of a given storage backend.
// Factories are plain values passed to the code that needs to
// create tensors: there is no global default factory.
type Factory[T any] interface {
	// Empty returns a new tensor with given sizes, where every
	// cell has the zero value of T.
	Empty(sizes ...int) (Tensor[T], error)

	// Filled returns a new tensor with given sizes, where every
	// cell has the given value.
	Filled(val T, sizes ...int) (Tensor[T], error)
}

// DenseFactory creates [Dense] tensors.
type DenseFactory[T any] struct{}

func (DenseFactory[T]) Empty(sizes ...int) (Tensor[T], error) {
	return asTensor[T](NewDense[T](sizes...))
}

func (DenseFactory[T]) Filled(val T, sizes ...int) (Tensor[T], error) {
	return asTensor[T](NewDenseFilled(val, sizes...))
}

// SparseFactory creates [Sparse] tensors, with the zero value
// or the fill value as the default.
type SparseFactory[T any] struct{}

func (SparseFactory[T]) Empty(sizes ...int) (Tensor[T], error) {
	return asTensor[T](NewSparse[T](sizes...))
}

func (SparseFactory[T]) Filled(val T, sizes ...int) (Tensor[T], error) {
	return asTensor[T](NewSparseFilled(val, sizes...))
}

// UniformFactory creates immutable [Uniform] tensors.
type UniformFactory[T any] struct{}

func (UniformFactory[T]) Empty(sizes ...int) (Tensor[T], error) {
	var z T
	return asTensor[T](NewUniform(z, sizes...))
}

func (UniformFactory[T]) Filled(val T, sizes ...int) (Tensor[T], error) {
	return asTensor[T](NewUniform(val, sizes...))
}

// asTensor returns a nil interface, rather than a typed nil pointer,
// on error.
func asTensor[T any, P Tensor[T]](tsr P, err error) (Tensor[T], error) {
	if err != nil {
		return nil, err
	}
	return tsr, nil
}

// NewFactory returns the factory for the named backend:
// "dense", "sparse" or "uniform".
func NewFactory[T any](backend string) (Factory[T], bool) {
	switch backend {
	case "dense":
		return DenseFactory[T]{}, true
	case "sparse":
		return SparseFactory[T]{}, true
	case "uniform":
		return UniformFactory[T]{}, true
	}
	return nil, false
}

// check for interface impl
var (
	_ Factory[float64] = DenseFactory[float64]{}
	_ Factory[float64] = SparseFactory[float64]{}
	_ Factory[float64] = UniformFactory[float64]{}
)
