// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"slices"
)

// ReshapeIndex is a length-preserving reshaping index: coordinates are
// converted to a row-major flat offset in its own shape, and back into
// coordinates of the parent shape. Reshaping by adding new size=1
// dimensions (via [NewAxis] value) is often important for aligning
// two tensors in a computationally compatible manner.
type ReshapeIndex struct {
	shape  Shape
	parent Shape
}

// NewAxis can be used in [NewReshapeIndex] to indicate where a
// new dimension (axis) is being added relative to the source shape.
const NewAxis = 1

// NewReshapeIndex returns a reshaping index of a parent with given
// sizes, which must have the same number of cells as the parent.
// If a different subset of content is desired, use an [AxisIndex].
func NewReshapeIndex(parent []int, sizes ...int) (*ReshapeIndex, error) {
	n, err := checkedLen(sizes)
	if err != nil {
		return nil, err
	}
	pn, err := checkedLen(parent)
	if err != nil {
		return nil, err
	}
	if n != pn {
		return nil, fmt.Errorf("tensor.NewReshapeIndex: %s has %d cells, parent %s has %d: %w", SizesString(sizes), n, SizesString(parent), pn, ErrInvalidIndex)
	}
	rs := &ReshapeIndex{}
	rs.shape.Sizes = slices.Clone(sizes)
	rs.shape.Strides = RowMajorStrides(sizes...)
	rs.parent.Sizes = slices.Clone(parent)
	rs.parent.Strides = RowMajorStrides(parent...)
	return rs, nil
}

func (rs *ReshapeIndex) ShapeSizes() []int   { return rs.shape.Sizes }
func (rs *ReshapeIndex) NumDims() int        { return rs.shape.NumDims() }
func (rs *ReshapeIndex) DimSize(dim int) int { return rs.shape.DimSize(dim) }
func (rs *ReshapeIndex) ParentSizes() []int  { return rs.parent.Sizes }

func (rs *ReshapeIndex) MapTo(parent, coords []int) {
	rs.parent.IndexFrom1DTo(parent, rs.shape.IndexTo1D(coords...))
}

// check for interface impl
var _ Index = (*ReshapeIndex)(nil)
