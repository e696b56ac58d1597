// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"fmt"

	"cogentcore.org/tensor/base/errors"
	"cogentcore.org/tensor/tensor"
	"gonum.org/v1/gonum/mat"
)

// EigSym performs the eigen decomposition of the given symmetric square matrix,
// which produces real-valued results.
// The vectors are same size as the input. Each vector is a column
// in this 2D square matrix, ordered *lowest* to *highest* across the columns,
// i.e., maximum vector is the last column.
// The values are the size of one row, ordered *lowest* to *highest*.
// Note that EigSym produces results in the *opposite* order of [SVD].
// If the input tensor is > 2D, it is treated as a list of 2D matricies.
func EigSym[T tensor.Numeric](a tensor.Tensor[T]) (vecs, vals *tensor.Dense[float64], err error) {
	return decompose(a, func(ma mat.Symmetric, do *mat.Dense, dv []float64) error {
		var eig mat.EigenSym
		if !eig.Factorize(ma, true) {
			return errors.New("gonum mat.EigenSym Factorize failed")
		}
		eig.VectorsTo(do)
		eig.Values(dv)
		return nil
	})
}

// SVD performs the singular value decomposition of the given symmetric square matrix,
// which produces real-valued results, and is generally much faster than [EigSym],
// while producing the same results.
// The vectors are same size as the input. Each vector is a column
// in this 2D square matrix, ordered *highest* to *lowest* across the columns,
// i.e., maximum vector is the first column.
// The values are the size of one row ordered in alignment with the vectors.
// If the input tensor is > 2D, it is treated as a list of 2D matricies.
func SVD[T tensor.Numeric](a tensor.Tensor[T]) (vecs, vals *tensor.Dense[float64], err error) {
	return decompose(a, func(ma mat.Symmetric, do *mat.Dense, dv []float64) error {
		var svd mat.SVD
		if !svd.Factorize(ma, mat.SVDFull) {
			return errors.New("gonum mat.SVD Factorize failed")
		}
		svd.UTo(do)
		svd.Values(dv)
		return nil
	})
}

// decompose applies fn to each square matrix in a, writing vectors
// and values directly into the returned tensors.
func decompose[T tensor.Numeric](a tensor.Tensor[T], fn func(ma mat.Symmetric, do *mat.Dense, dv []float64) error) (vecs, vals *tensor.Dense[float64], err error) {
	nd := a.NumDims()
	if nd < 2 {
		return nil, nil, fmt.Errorf("matrix: decomposition of %d dimensional tensor: %w", nd, mat.ErrShape)
	}
	sz := a.DimSize(nd - 1)
	if a.DimSize(nd-2) != sz {
		return nil, nil, fmt.Errorf("matrix: decomposition of %s tensor: %w", tensor.SizesString(a.ShapeSizes()), mat.ErrSquare)
	}
	nr := a.Len() / (sz * sz)
	ea, err := tensor.Reshape(a, nr, sz, sz)
	if err != nil {
		return nil, nil, err
	}
	vecShape := append(append([]int{}, a.ShapeSizes()[:nd-1]...), sz)
	if vecs, err = tensor.NewDense[float64](vecShape...); err != nil {
		return nil, nil, err
	}
	if vals, err = tensor.NewDense[float64](a.ShapeSizes()[:nd-1]...); err != nil {
		return nil, nil, err
	}
	var errs []error
	for r := range nr {
		sa, err := tensor.SubTensor[T](ea, 0, r)
		if err != nil {
			return nil, nil, err
		}
		ma, err := NewSymmetric[T](sa)
		if err != nil {
			return nil, nil, err
		}
		do := mat.NewDense(sz, sz, vecs.Values[r*sz*sz:(r+1)*sz*sz])
		if err := fn(ma, do, vals.Values[r*sz:(r+1)*sz]); err != nil {
			errs = append(errs, err)
		}
	}
	return vecs, vals, errors.Join(errs...)
}
