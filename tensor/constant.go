// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
)

// immutable is embedded by the structural backends, which reject all writes.
type immutable[T any] struct {
	Base[T]
}

func (tsr *immutable[T]) SetValue(val T, i ...int) error {
	if err := CheckCoords(tsr.shape.Sizes, i); err != nil {
		return err
	}
	return tsr.setCell(val, i)
}

func (tsr *immutable[T]) setCell(val T, i []int) error {
	return fmt.Errorf("tensor: set on %s: %w", tsr.Label(), ErrImmutable)
}

// Uniform is an immutable tensor having the same value at every coordinate.
type Uniform[T any] struct {
	immutable[T]

	value T
}

// NewUniform returns a new uniform tensor of the given value and sizes.
func NewUniform[T any](val T, sizes ...int) (*Uniform[T], error) {
	tsr := &Uniform[T]{value: val}
	if err := tsr.init(sizes); err != nil {
		return nil, err
	}
	return tsr, nil
}

func (tsr *Uniform[T]) String() string { return Sprint[T](tsr) }

// Uniform returns the value of every cell.
func (tsr *Uniform[T]) Uniform() T { return tsr.value }

func (tsr *Uniform[T]) Value(i ...int) (T, error) {
	if err := CheckCoords(tsr.shape.Sizes, i); err != nil {
		var z T
		return z, err
	}
	return tsr.value, nil
}

func (tsr *Uniform[T]) cell(i []int) T { return tsr.value }

// Identity is an immutable numeric tensor with value 1 where all
// coordinates are equal and 0 elsewhere. A rank-0 identity has the
// single value 1.
type Identity[T Numeric] struct {
	immutable[T]
}

// NewIdentity returns a new identity tensor with the given sizes,
// which need not be equal: only the leading diagonal is 1.
func NewIdentity[T Numeric](sizes ...int) (*Identity[T], error) {
	tsr := &Identity[T]{}
	if err := tsr.init(sizes); err != nil {
		return nil, err
	}
	return tsr, nil
}

func (tsr *Identity[T]) String() string { return Sprint[T](tsr) }

func (tsr *Identity[T]) Value(i ...int) (T, error) {
	if err := CheckCoords(tsr.shape.Sizes, i); err != nil {
		return 0, err
	}
	return tsr.cell(i), nil
}

func (tsr *Identity[T]) cell(i []int) T {
	for _, c := range i[min(1, len(i)):] {
		if c != i[0] {
			return 0
		}
	}
	return 1
}

// Zero is an immutable numeric tensor of all zeros.
type Zero[T Numeric] struct {
	immutable[T]
}

// NewZero returns a new zero tensor with the given sizes.
func NewZero[T Numeric](sizes ...int) (*Zero[T], error) {
	tsr := &Zero[T]{}
	if err := tsr.init(sizes); err != nil {
		return nil, err
	}
	return tsr, nil
}

func (tsr *Zero[T]) String() string { return Sprint[T](tsr) }

func (tsr *Zero[T]) Value(i ...int) (T, error) {
	if err := CheckCoords(tsr.shape.Sizes, i); err != nil {
		return 0, err
	}
	return 0, nil
}

func (tsr *Zero[T]) cell(i []int) T { return 0 }

// check for interface impl
var (
	_ Tensor[float64] = (*Uniform[float64])(nil)
	_ Tensor[float64] = (*Identity[float64])(nil)
	_ Tensor[float64] = (*Zero[float64])(nil)
)
