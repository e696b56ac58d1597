// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"iter"
	"slices"
)

// Shape manages a tensor's shape information, including sizes
// and row-major strides, and can compute the flat index into
// an underlying 1D data storage array based on an n-dimensional
// index (and vice-versa).
// Per C / Go / Python conventions, indexes are Row-Major, ordered from
// outer to inner left-to-right, so the inner-most is right-most.
type Shape struct {

	// size per dimension.
	Sizes []int

	// offsets for each dimension.
	Strides []int `display:"-"`
}

// NewShape returns a new shape with given sizes, which are
// validated to be >= 1 and to have an addressable number of cells.
func NewShape(sizes ...int) (*Shape, error) {
	if _, err := checkedLen(sizes); err != nil {
		return nil, err
	}
	sh := &Shape{Sizes: slices.Clone(sizes)}
	sh.Strides = RowMajorStrides(sh.Sizes...)
	return sh, nil
}

// Len returns the total length of elements in the tensor
// (i.e., the product of the shape sizes).
func (sh *Shape) Len() int {
	ln := 1
	for _, v := range sh.Sizes {
		ln *= v
	}
	return ln
}

// NumDims returns the total number of dimensions.
func (sh *Shape) NumDims() int { return len(sh.Sizes) }

// DimSize returns the size of given dimension.
func (sh *Shape) DimSize(i int) int { return sh.Sizes[i] }

// IsEqual returns true if this shape is same as other
// (does not compare names).
func (sh *Shape) IsEqual(oth *Shape) bool {
	return slices.Equal(sh.Sizes, oth.Sizes)
}

// IndexTo1D returns the flat 1D index from given n-dimensional indicies.
// No checking is done on the length or size of the index values
// relative to the shape of the tensor.
func (sh *Shape) IndexTo1D(index ...int) int {
	oned := 0
	for i, v := range index {
		oned += v * sh.Strides[i]
	}
	return oned
}

// IndexFrom1D returns the n-dimensional index from a "flat" 1D array index.
func (sh *Shape) IndexFrom1D(oned int) []int {
	index := make([]int, len(sh.Sizes))
	sh.IndexFrom1DTo(index, oned)
	return index
}

// IndexFrom1DTo writes the n-dimensional index for the flat
// 1D index into dst, which must have NumDims elements.
func (sh *Shape) IndexFrom1DTo(dst []int, oned int) {
	for i := len(sh.Sizes) - 1; i >= 0; i-- {
		s := sh.Sizes[i]
		dst[i] = oned % s
		oned /= s
	}
}

// String satisfies the fmt.Stringer interface
func (sh *Shape) String() string {
	return SizesString(sh.Sizes)
}

// SizesString returns a string representation of the sizes,
// e.g. [2, 3].
func SizesString(sizes []int) string {
	str := "["
	for i := range sizes {
		str += fmt.Sprintf("%d", sizes[i])
		if i < len(sizes)-1 {
			str += ", "
		}
	}
	str += "]"
	return str
}

// RowMajorStrides returns strides for sizes where the first dimension is outermost
// and subsequent dimensions are progressively inner.
func RowMajorStrides(sizes ...int) []int {
	if len(sizes) == 0 {
		return nil
	}
	rem := int(1)
	for _, v := range sizes {
		rem *= v
	}

	if rem == 0 {
		strides := make([]int, len(sizes))
		for i := range strides {
			strides[i] = rem
		}
		return strides
	}

	strides := make([]int, len(sizes))
	for i, v := range sizes {
		rem /= v
		strides[i] = rem
	}
	return strides
}

// Coords returns an iterator over all coordinates of the given
// sizes in row-major order (last dimension varying fastest).
// A rank 0 shape yields a single empty coordinate.
// The yielded slice is reused between iterations: copy it to retain it.
func Coords(sizes []int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for _, sz := range sizes {
			if sz < 1 {
				return
			}
		}
		c := make([]int, len(sizes))
		for {
			if !yield(c) {
				return
			}
			d := len(c) - 1
			for ; d >= 0; d-- {
				c[d]++
				if c[d] < sizes[d] {
					break
				}
				c[d] = 0
			}
			if d < 0 {
				return
			}
		}
	}
}
