// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"math"
	"slices"
)

// Sparse is a mutable tensor storing only the values that have been
// set, keyed by a linearized coordinate, with a Default value returned
// for every coordinate that has never been set.
//
// The key of a coordinate is its mixed-radix encoding with the first
// dimension varying fastest: stride[0] = 1, stride[i] = stride[i-1]*size[i-1].
// The total number of cells must fit in an int64.
//
// Setting a value always stores an entry, even when the value is
// equal to Default: a written cell stays written.
type Sparse[T any] struct {
	Base[T]

	// Default is the value of cells that have not been set.
	// It is fixed at construction.
	Default T

	// strides for the linearized key.
	strides []int64

	// values that have been set.
	values map[int64]T
}

// NewSparse returns a new sparse tensor with the zero value as default.
func NewSparse[T any](sizes ...int) (*Sparse[T], error) {
	var z T
	return NewSparseFilled(z, sizes...)
}

// NewSparseFilled returns a new sparse tensor with given default value.
// It returns [ErrCapacityOverflow] if the number of cells does not fit
// in an int64 key.
func NewSparseFilled[T any](def T, sizes ...int) (*Sparse[T], error) {
	if err := CheckSizes(sizes); err != nil {
		return nil, err
	}
	if _, err := CellCount(sizes, math.MaxInt64); err != nil {
		return nil, err
	}
	tsr := &Sparse[T]{Default: def, values: make(map[int64]T)}
	tsr.shape.Sizes = slices.Clone(sizes)
	tsr.shape.Strides = RowMajorStrides(sizes...)
	tsr.strides = make([]int64, len(sizes))
	st := int64(1)
	for d, sz := range sizes {
		tsr.strides[d] = st
		st *= int64(sz)
	}
	return tsr, nil
}

// String satisfies the fmt.Stringer interface for string of tensor data.
func (tsr *Sparse[T]) String() string { return Sprint[T](tsr) }

// Key returns the linearized key for given coordinates,
// which are not checked.
func (tsr *Sparse[T]) Key(i ...int) int64 {
	var k int64
	for d, c := range i {
		k += int64(c) * tsr.strides[d]
	}
	return k
}

func (tsr *Sparse[T]) Value(i ...int) (T, error) {
	if err := CheckCoords(tsr.shape.Sizes, i); err != nil {
		var z T
		return z, err
	}
	return tsr.cell(i), nil
}

func (tsr *Sparse[T]) SetValue(val T, i ...int) error {
	if err := CheckCoords(tsr.shape.Sizes, i); err != nil {
		return err
	}
	return tsr.setCell(val, i)
}

func (tsr *Sparse[T]) cell(i []int) T {
	if v, ok := tsr.values[tsr.Key(i...)]; ok {
		return v
	}
	return tsr.Default
}

func (tsr *Sparse[T]) setCell(val T, i []int) error {
	tsr.values[tsr.Key(i...)] = val
	return nil
}

// Stored returns whether a value has been set at given coordinates,
// which is the only way to distinguish a cell set to Default from
// one never set.
func (tsr *Sparse[T]) Stored(i ...int) (bool, error) {
	if err := CheckCoords(tsr.shape.Sizes, i); err != nil {
		return false, err
	}
	_, ok := tsr.values[tsr.Key(i...)]
	return ok, nil
}

// NumStored returns the number of values that have been set.
func (tsr *Sparse[T]) NumStored() int { return len(tsr.values) }

// check for interface impl
var _ Tensor[float64] = (*Sparse[float64])(nil)
