// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"cogentcore.org/tensor/base/metadata"
)

// cells is implemented by concrete backends, giving access to values
// without bounds checking, for use once coordinates have been validated.
type cells[T any] interface {
	cell(i []int) T
	setCell(val T, i []int) error
}

// View is a reference view onto another "source" [Tensor], through an
// [Index] that maps the view coordinates onto the source coordinates.
// A View holds no values: reads and writes go to the source, so changes
// through either are visible in both. Views of views are flattened
// by [NewView]: the source of a View is never itself a *View.
type View[T any] struct {

	// Tensor source that we are a view onto.
	Tensor Tensor[T]

	// index mapping view coordinates onto source coordinates.
	index Index

	// cells of the source, if it supports unchecked access.
	cells cells[T]
}

// NewView returns a new [View] of the given tensor through the index,
// which must map onto the shape of the tensor, or [ErrInvalidIndex]
// is returned. If the tensor is itself a View, the index is composed
// with its index and the new view refers directly to its source.
func NewView[T any](tsr Tensor[T], idx Index) (*View[T], error) {
	if err := ValidIndexFor(idx, tsr.ShapeSizes()); err != nil {
		return nil, err
	}
	if vw, ok := tsr.(*View[T]); ok {
		ci, err := Compose(idx, vw.index)
		if err != nil {
			return nil, err
		}
		tsr, idx = vw.Tensor, ci
	}
	vw := &View[T]{Tensor: tsr, index: idx}
	vw.cells, _ = tsr.(cells[T])
	return vw, nil
}

// Transpose returns a view of the tensor with dimensions permuted:
// dimension i of the view is dimension perm[i] of the tensor.
func Transpose[T any](tsr Tensor[T], perm ...int) (*View[T], error) {
	idx, err := NewTransposeIndex(tsr.ShapeSizes(), perm...)
	if err != nil {
		return nil, err
	}
	return NewView(tsr, idx)
}

// Reshape returns a view of the tensor with given sizes, which
// must have the same number of cells, in row-major order.
func Reshape[T any](tsr Tensor[T], sizes ...int) (*View[T], error) {
	idx, err := NewReshapeIndex(tsr.ShapeSizes(), sizes...)
	if err != nil {
		return nil, err
	}
	return NewView(tsr, idx)
}

// SubTensor returns a view of the tensor with dimension dim
// fixed at the given coordinate, having one less dimension.
func SubTensor[T any](tsr Tensor[T], dim, coord int) (*View[T], error) {
	idx, err := NewFixIndex(tsr.ShapeSizes(), dim, coord)
	if err != nil {
		return nil, err
	}
	return NewView(tsr, idx)
}

// Select returns a view of the tensor with only the given
// coordinates, in order, along dimension dim.
func Select[T any](tsr Tensor[T], dim int, coords ...int) (*View[T], error) {
	idx, err := NewSelectIndex(tsr.ShapeSizes(), dim, coords...)
	if err != nil {
		return nil, err
	}
	return NewView(tsr, idx)
}

// Expand returns a view repeating the tensor into the given
// larger sizes; see [NewExpandIndex].
func Expand[T any](tsr Tensor[T], sizes ...int) (*View[T], error) {
	idx, err := NewExpandIndex(tsr.ShapeSizes(), sizes...)
	if err != nil {
		return nil, err
	}
	return NewView(tsr, idx)
}

func (vw *View[T]) String() string           { return Sprint[T](vw) }
func (vw *View[T]) ShapeSizes() []int        { return vw.index.ShapeSizes() }
func (vw *View[T]) NumDims() int             { return vw.index.NumDims() }
func (vw *View[T]) DimSize(dim int) int      { return vw.index.DimSize(dim) }
func (vw *View[T]) Kind() Kind               { return vw.Tensor.Kind() }
func (vw *View[T]) Index() Index             { return vw.index }
func (vw *View[T]) Metadata() *metadata.Data { return vw.Tensor.Metadata() }
func (vw *View[T]) Unwrap() any              { return vw.Tensor }

// Len returns the number of elements in the view.
func (vw *View[T]) Len() int {
	n := 1
	for _, sz := range vw.index.ShapeSizes() {
		n *= sz
	}
	return n
}

// SourceCoords returns the source tensor coordinates
// for the given view coordinates.
func (vw *View[T]) SourceCoords(i ...int) ([]int, error) {
	if err := CheckCoords(vw.index.ShapeSizes(), i); err != nil {
		return nil, err
	}
	pc := make([]int, len(vw.index.ParentSizes()))
	vw.index.MapTo(pc, i)
	return pc, nil
}

func (vw *View[T]) Value(i ...int) (T, error) {
	pc, err := vw.SourceCoords(i...)
	if err != nil {
		var z T
		return z, err
	}
	if vw.cells != nil {
		return vw.cells.cell(pc), nil
	}
	return vw.Tensor.Value(pc...)
}

func (vw *View[T]) SetValue(val T, i ...int) error {
	pc, err := vw.SourceCoords(i...)
	if err != nil {
		return err
	}
	if vw.cells != nil {
		return vw.cells.setCell(val, pc)
	}
	return vw.Tensor.SetValue(val, pc...)
}

// check for interface impl
var _ Tensor[float64] = (*View[float64])(nil)
