// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"

	"cogentcore.org/tensor/base/metadata"
)

// Base holds the shape and metadata common to the concrete
// storage backends, which embed it.
type Base[T any] struct {

	// shape of the tensor.
	shape Shape

	// metadata for the tensor.
	meta metadata.Data
}

func (tsr *Base[T]) init(sizes []int) error {
	if _, err := checkedLen(sizes); err != nil {
		return err
	}
	tsr.shape.Sizes = append([]int{}, sizes...)
	tsr.shape.Strides = RowMajorStrides(sizes...)
	return nil
}

// Shape returns a pointer to the shape that fully parametrizes the tensor shape.
func (tsr *Base[T]) Shape() *Shape { return &tsr.shape }

// ShapeSizes returns the sizes of the dimensions.
func (tsr *Base[T]) ShapeSizes() []int { return tsr.shape.Sizes }

// NumDims returns the total number of dimensions.
func (tsr *Base[T]) NumDims() int { return tsr.shape.NumDims() }

// DimSize returns size of given dimension.
func (tsr *Base[T]) DimSize(dim int) int { return tsr.shape.DimSize(dim) }

// Len returns the number of elements in the tensor (product of shape dimensions).
func (tsr *Base[T]) Len() int { return tsr.shape.Len() }

// Kind returns the element kind.
func (tsr *Base[T]) Kind() Kind { return KindOf[T]() }

// Index returns the standard index for the shape.
func (tsr *Base[T]) Index() Index { return StandardIndex(tsr.shape.Sizes...) }

// Metadata returns the metadata for this tensor.
func (tsr *Base[T]) Metadata() *metadata.Data { return &tsr.meta }

// Label returns a summary description of the tensor.
func (tsr *Base[T]) Label() string {
	return label(tsr.meta.Name(), tsr.Kind(), tsr.shape.Sizes)
}

func label(name string, kind Kind, sizes []int) string {
	if name != "" {
		return fmt.Sprintf("%s %s %s", name, kind, SizesString(sizes))
	}
	return fmt.Sprintf("Tensor %s %s", kind, SizesString(sizes))
}
