// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"slices"
)

// AxisIndex maps each parent dimension independently: a parent
// dimension is either fixed at one coordinate, or driven by one of
// the index's own dimensions through an optional lookup list of
// parent coordinates. This expresses transposes (permuted dimensions),
// sub-selections and re-orderings (lookup lists), repeats (lookup lists
// with repeated values, or index dimensions that drive no parent
// dimension), diagonals (one dimension driving several) and
// collapsed dimensions (fixed coordinates).
type AxisIndex struct {

	// sizes of our own dimensions.
	sizes []int

	// sizes of the parent dimensions.
	parent []int

	// axes has, for each parent dimension, the index dimension
	// that drives it, or -1 if it is fixed.
	axes []int

	// lookups has, for each parent dimension, the list of parent
	// coordinates for each coordinate of the driving dimension,
	// nil for the identity, or a single fixed coordinate.
	lookups [][]int
}

// NewAxisIndex returns an [AxisIndex] with given sizes onto the given
// parent sizes. axes and lookups have one element per parent dimension:
// axes[p] is the index dimension driving parent dimension p, or -1 to fix
// it at lookups[p][0]. A nil lookups[p] maps coordinates through unchanged.
// Invalid combinations return [ErrInvalidIndex].
func NewAxisIndex(parent, sizes, axes []int, lookups [][]int) (*AxisIndex, error) {
	if err := CheckSizes(sizes); err != nil {
		return nil, err
	}
	if err := CheckSizes(parent); err != nil {
		return nil, err
	}
	np := len(parent)
	if len(axes) != np || len(lookups) != np {
		return nil, fmt.Errorf("tensor.NewAxisIndex: need %d axes and lookups, have %d and %d: %w", np, len(axes), len(lookups), ErrInvalidIndex)
	}
	ai := &AxisIndex{sizes: slices.Clone(sizes), parent: slices.Clone(parent), axes: slices.Clone(axes), lookups: make([][]int, np)}
	for p, a := range axes {
		lk := lookups[p]
		switch {
		case a < 0:
			if len(lk) != 1 {
				return nil, fmt.Errorf("tensor.NewAxisIndex: fixed parent dimension %d needs one coordinate, has %d: %w", p, len(lk), ErrInvalidIndex)
			}
		case a >= len(sizes):
			return nil, fmt.Errorf("tensor.NewAxisIndex: parent dimension %d driven by dimension %d of %d: %w", p, a, len(sizes), ErrInvalidIndex)
		case lk == nil:
			if sizes[a] > parent[p] {
				return nil, fmt.Errorf("tensor.NewAxisIndex: dimension %d of size %d passes through to parent dimension %d of size %d: %w", a, sizes[a], p, parent[p], ErrInvalidIndex)
			}
			continue
		case len(lk) != sizes[a]:
			return nil, fmt.Errorf("tensor.NewAxisIndex: lookup for parent dimension %d has %d entries for size %d: %w", p, len(lk), sizes[a], ErrInvalidIndex)
		}
		for _, v := range lk {
			if v < 0 || v >= parent[p] {
				return nil, fmt.Errorf("tensor.NewAxisIndex: lookup value %d for parent dimension %d of size %d: %w", v, p, parent[p], ErrInvalidIndex)
			}
		}
		ai.lookups[p] = slices.Clone(lk)
	}
	return ai, nil
}

// NewTransposeIndex returns an index whose dimension i is parent
// dimension perm[i]. perm must be a permutation of the parent dimensions.
func NewTransposeIndex(parent []int, perm ...int) (*AxisIndex, error) {
	np := len(parent)
	if len(perm) != np {
		return nil, fmt.Errorf("tensor.NewTransposeIndex: permutation %v for %d dimensions: %w", perm, np, ErrInvalidIndex)
	}
	sizes := make([]int, np)
	axes := slices.Repeat([]int{-1}, np)
	for i, p := range perm {
		if p < 0 || p >= np || axes[p] >= 0 {
			return nil, fmt.Errorf("tensor.NewTransposeIndex: %v is not a permutation: %w", perm, ErrInvalidIndex)
		}
		axes[p] = i
		sizes[i] = parent[p]
	}
	return NewAxisIndex(parent, sizes, axes, make([][]int, np))
}

// NewSelectIndex returns an index selecting the given coordinates,
// in order, along one parent dimension. Coordinates can repeat,
// which repeats the corresponding values.
func NewSelectIndex(parent []int, dim int, coords ...int) (*AxisIndex, error) {
	if dim < 0 || dim >= len(parent) {
		return nil, fmt.Errorf("tensor.NewSelectIndex: dimension %d of %d: %w", dim, len(parent), ErrInvalidIndex)
	}
	sizes := slices.Clone(parent)
	sizes[dim] = len(coords)
	lookups := make([][]int, len(parent))
	lookups[dim] = coords
	return NewAxisIndex(parent, sizes, identityAxes(len(parent)), lookups)
}

// NewFixIndex returns an index with one less dimension than the
// parent, with parent dimension dim fixed at the given coordinate.
func NewFixIndex(parent []int, dim, coord int) (*AxisIndex, error) {
	np := len(parent)
	if dim < 0 || dim >= np {
		return nil, fmt.Errorf("tensor.NewFixIndex: dimension %d of %d: %w", dim, np, ErrInvalidIndex)
	}
	sizes := slices.Delete(slices.Clone(parent), dim, dim+1)
	axes := make([]int, np)
	lookups := make([][]int, np)
	for p := range np {
		switch {
		case p < dim:
			axes[p] = p
		case p == dim:
			axes[p] = -1
			lookups[p] = []int{coord}
		default:
			axes[p] = p - 1
		}
	}
	return NewAxisIndex(parent, sizes, axes, lookups)
}

// NewExpandIndex returns an index that repeats the parent into the
// larger given sizes, aligning dimensions from the innermost (right) side:
// extra outer dimensions repeat the whole parent, and parent dimensions
// of size 1 repeat along the corresponding dimension.
func NewExpandIndex(parent []int, sizes ...int) (*AxisIndex, error) {
	np, ns := len(parent), len(sizes)
	if ns < np {
		return nil, fmt.Errorf("tensor.NewExpandIndex: %s has fewer dimensions than %s: %w", SizesString(sizes), SizesString(parent), ErrInvalidIndex)
	}
	axes := make([]int, np)
	lookups := make([][]int, np)
	for p := range np {
		a := p + ns - np
		axes[p] = a
		switch {
		case sizes[a] == parent[p]:
		case parent[p] == 1:
			lookups[p] = make([]int, sizes[a])
		default:
			return nil, fmt.Errorf("tensor.NewExpandIndex: cannot expand dimension %d of size %d to %d: %w", p, parent[p], sizes[a], ErrInvalidIndex)
		}
	}
	return NewAxisIndex(parent, sizes, axes, lookups)
}

func identityAxes(n int) []int {
	axes := make([]int, n)
	for i := range axes {
		axes[i] = i
	}
	return axes
}

func (ai *AxisIndex) ShapeSizes() []int   { return ai.sizes }
func (ai *AxisIndex) NumDims() int        { return len(ai.sizes) }
func (ai *AxisIndex) DimSize(dim int) int { return ai.sizes[dim] }
func (ai *AxisIndex) ParentSizes() []int  { return ai.parent }

func (ai *AxisIndex) MapTo(parent, coords []int) {
	for p, a := range ai.axes {
		if a < 0 {
			parent[p] = ai.lookups[p][0]
			continue
		}
		parent[p] = lookupAt(ai.lookups[p], coords[a])
	}
}

// check for interface impl
var _ Index = (*AxisIndex)(nil)
