// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"slices"
)

// Index describes the shape of a tensor and maps coordinates in that
// shape onto the coordinates of a parent tensor. The standard index of
// a concrete tensor maps coordinates onto themselves; the indexes of
// views map onto the concrete tensor holding the values, which allows
// reshaping, transposing, repeating and sub-selecting without copying.
//
// Indexes are immutable, and MapTo is a pure function, so
// any number of goroutines can read through the same index.
type Index interface {
	// ShapeSizes returns the sizes of the dimensions of the index.
	// The returned slice must not be modified.
	ShapeSizes() []int

	// NumDims returns the number of dimensions.
	NumDims() int

	// DimSize returns the size of given dimension.
	DimSize(dim int) int

	// ParentSizes returns the sizes of the tensor that the index maps onto.
	// The returned slice must not be modified.
	ParentSizes() []int

	// MapTo writes into parent the parent coordinates corresponding to
	// the given coordinates, which must be valid for ShapeSizes.
	// parent must have len(ParentSizes()) elements.
	MapTo(parent, coords []int)
}

// IsStandard returns true if the index is a standard (identity) index.
func IsStandard(idx Index) bool {
	_, ok := idx.(*standardIndex)
	return ok
}

// ValidIndexFor returns [ErrInvalidIndex] if the index does not map
// onto a tensor with the given sizes, or has invalid sizes itself.
func ValidIndexFor(idx Index, sizes []int) error {
	if idx == nil {
		return fmt.Errorf("tensor: nil index: %w", ErrInvalidIndex)
	}
	if !slices.Equal(idx.ParentSizes(), sizes) {
		return fmt.Errorf("tensor: index maps onto shape %s, not %s: %w", SizesString(idx.ParentSizes()), SizesString(sizes), ErrInvalidIndex)
	}
	if err := CheckSizes(idx.ShapeSizes()); err != nil {
		return fmt.Errorf("tensor: index shape %s: %w", SizesString(idx.ShapeSizes()), ErrInvalidIndex)
	}
	return nil
}

// Compose returns an index mapping the coordinates of outer directly
// onto the parent of inner, where outer must map onto the shape of inner.
// The result never chains the two: axis-wise indexes compose into an
// axis-wise index, reshapes into a reshape, and any other combination
// into a precomputed table, so that mapping stays O(rank) however
// many views are stacked. The table holds every parent coordinate of
// every cell of outer, so its memory is proportional to the cell count
// times the rank: reshaping a transposed view of a large tensor
// allocates rank ints per cell.
func Compose(outer, inner Index) (Index, error) {
	if err := ValidIndexFor(outer, inner.ShapeSizes()); err != nil {
		return nil, err
	}
	if IsStandard(inner) {
		return outer, nil
	}
	if IsStandard(outer) {
		return inner, nil
	}
	switch o := outer.(type) {
	case *AxisIndex:
		if i, ok := inner.(*AxisIndex); ok {
			return composeAxes(o, i), nil
		}
	case *ReshapeIndex:
		if i, ok := inner.(*ReshapeIndex); ok {
			return NewReshapeIndex(i.parent.Sizes, o.shape.Sizes...)
		}
	}
	return newTableIndex(outer, inner), nil
}

func lookupAt(lookup []int, i int) int {
	if lookup == nil {
		return i
	}
	return lookup[i]
}

func composeAxes(o, i *AxisIndex) *AxisIndex {
	np := len(i.parent)
	ci := &AxisIndex{
		sizes:   o.sizes,
		parent:  i.parent,
		axes:    make([]int, np),
		lookups: make([][]int, np),
	}
	for p := range np {
		m := i.axes[p]
		if m < 0 {
			ci.axes[p] = -1
			ci.lookups[p] = i.lookups[p]
			continue
		}
		a := o.axes[m]
		if a < 0 {
			ci.axes[p] = -1
			ci.lookups[p] = []int{lookupAt(i.lookups[p], o.lookups[m][0])}
			continue
		}
		ci.axes[p] = a
		if o.lookups[m] == nil && i.lookups[p] == nil {
			continue
		}
		lk := make([]int, o.sizes[a])
		for k := range lk {
			lk[k] = lookupAt(i.lookups[p], lookupAt(o.lookups[m], k))
		}
		ci.lookups[p] = lk
	}
	return ci
}

////////  Standard

// standardIndex is the identity index of a concrete tensor.
type standardIndex struct {
	sizes []int
}

// StandardIndex returns the identity index for given sizes,
// which are assumed to be valid.
func StandardIndex(sizes ...int) Index {
	return &standardIndex{sizes: slices.Clone(sizes)}
}

func (si *standardIndex) ShapeSizes() []int          { return si.sizes }
func (si *standardIndex) NumDims() int               { return len(si.sizes) }
func (si *standardIndex) DimSize(dim int) int        { return si.sizes[dim] }
func (si *standardIndex) ParentSizes() []int         { return si.sizes }
func (si *standardIndex) MapTo(parent, coords []int) { copy(parent, coords) }

////////  Table

// tableIndex holds precomputed parent coordinates for every cell,
// in row-major order of its own shape.
type tableIndex struct {
	shape  Shape
	parent []int
	table  []int
}

func newTableIndex(outer, inner Index) *tableIndex {
	sizes := slices.Clone(outer.ShapeSizes())
	ti := &tableIndex{
		shape:  Shape{Sizes: sizes, Strides: RowMajorStrides(sizes...)},
		parent: inner.ParentSizes(),
	}
	np := len(ti.parent)
	ti.table = make([]int, ti.shape.Len()*np)
	mid := make([]int, inner.NumDims())
	off := 0
	for c := range Coords(sizes) {
		outer.MapTo(mid, c)
		inner.MapTo(ti.table[off:off+np], mid)
		off += np
	}
	return ti
}

func (ti *tableIndex) ShapeSizes() []int   { return ti.shape.Sizes }
func (ti *tableIndex) NumDims() int        { return len(ti.shape.Sizes) }
func (ti *tableIndex) DimSize(dim int) int { return ti.shape.Sizes[dim] }
func (ti *tableIndex) ParentSizes() []int  { return ti.parent }

func (ti *tableIndex) MapTo(parent, coords []int) {
	np := len(ti.parent)
	off := ti.shape.IndexTo1D(coords...) * np
	copy(parent, ti.table[off:off+np])
}
