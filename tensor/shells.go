// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import "fmt"

// The D0 through D9 shells wrap a tensor of fixed rank, giving
// accessors with one explicit parameter per coordinate. They have
// the same semantics and errors as [Tensor.Value] and [Tensor.SetValue].
// For a [Dense] tensor, in-range access reads and writes the values
// directly without allocating; other tensors and out-of-range
// coordinates go through Value and SetValue.
// Tensors of rank > 9 are used through [Tensor] directly.

func checkRank[T any](tsr Tensor[T], rank int) error {
	if tsr.NumDims() != rank {
		return fmt.Errorf("tensor.AsD%d: tensor has %d dimensions: %w", rank, tsr.NumDims(), ErrArity)
	}
	return nil
}

// denseOf returns the tensor as a *Dense, or nil.
func denseOf[T any](tsr Tensor[T]) *Dense[T] {
	d, _ := tsr.(*Dense[T])
	return d
}

// D0 is a shell over a tensor with 0 dimensions.
type D0[T any] struct {
	Tensor[T]
	dense *Dense[T]
}

// AsD0 returns a [D0] shell for the tensor, or [ErrArity]
// if it does not have 0 dimensions.
func AsD0[T any](tsr Tensor[T]) (D0[T], error) {
	if err := checkRank(tsr, 0); err != nil {
		return D0[T]{}, err
	}
	return D0[T]{tsr, denseOf(tsr)}, nil
}

func (d D0[T]) At() (T, error) {
	if d.dense != nil {
		return d.dense.Values[0], nil
	}
	return d.Value()
}

func (d D0[T]) Set(val T) error {
	if d.dense != nil {
		d.dense.Values[0] = val
		return nil
	}
	return d.SetValue(val)
}

// D1 is a shell over a tensor with 1 dimension.
type D1[T any] struct {
	Tensor[T]
	dense *Dense[T]
}

// AsD1 returns a [D1] shell for the tensor, or [ErrArity]
// if it does not have 1 dimension.
func AsD1[T any](tsr Tensor[T]) (D1[T], error) {
	if err := checkRank(tsr, 1); err != nil {
		return D1[T]{}, err
	}
	return D1[T]{tsr, denseOf(tsr)}, nil
}

func (d D1[T]) At(i0 int) (T, error) {
	if d.dense != nil {
		sz, st := d.dense.shape.Sizes, d.dense.shape.Strides
		if uint(i0) < uint(sz[0]) {
			return d.dense.Values[i0*st[0]], nil
		}
	}
	return d.Value(i0)
}

func (d D1[T]) Set(val T, i0 int) error {
	if d.dense != nil {
		sz, st := d.dense.shape.Sizes, d.dense.shape.Strides
		if uint(i0) < uint(sz[0]) {
			d.dense.Values[i0*st[0]] = val
			return nil
		}
	}
	return d.SetValue(val, i0)
}

// D2 is a shell over a tensor with 2 dimensions.
type D2[T any] struct {
	Tensor[T]
	dense *Dense[T]
}

// AsD2 returns a [D2] shell for the tensor, or [ErrArity]
// if it does not have 2 dimensions.
func AsD2[T any](tsr Tensor[T]) (D2[T], error) {
	if err := checkRank(tsr, 2); err != nil {
		return D2[T]{}, err
	}
	return D2[T]{tsr, denseOf(tsr)}, nil
}

func (d D2[T]) At(i0, i1 int) (T, error) {
	if d.dense != nil {
		sz, st := d.dense.shape.Sizes, d.dense.shape.Strides
		if uint(i0) < uint(sz[0]) && uint(i1) < uint(sz[1]) {
			return d.dense.Values[i0*st[0]+i1*st[1]], nil
		}
	}
	return d.Value(i0, i1)
}

func (d D2[T]) Set(val T, i0, i1 int) error {
	if d.dense != nil {
		sz, st := d.dense.shape.Sizes, d.dense.shape.Strides
		if uint(i0) < uint(sz[0]) && uint(i1) < uint(sz[1]) {
			d.dense.Values[i0*st[0]+i1*st[1]] = val
			return nil
		}
	}
	return d.SetValue(val, i0, i1)
}

// D3 is a shell over a tensor with 3 dimensions.
type D3[T any] struct {
	Tensor[T]
	dense *Dense[T]
}

// AsD3 returns a [D3] shell for the tensor, or [ErrArity]
// if it does not have 3 dimensions.
func AsD3[T any](tsr Tensor[T]) (D3[T], error) {
	if err := checkRank(tsr, 3); err != nil {
		return D3[T]{}, err
	}
	return D3[T]{tsr, denseOf(tsr)}, nil
}

func (d D3[T]) At(i0, i1, i2 int) (T, error) {
	if d.dense != nil {
		sz, st := d.dense.shape.Sizes, d.dense.shape.Strides
		if uint(i0) < uint(sz[0]) && uint(i1) < uint(sz[1]) && uint(i2) < uint(sz[2]) {
			return d.dense.Values[i0*st[0]+i1*st[1]+i2*st[2]], nil
		}
	}
	return d.Value(i0, i1, i2)
}

func (d D3[T]) Set(val T, i0, i1, i2 int) error {
	if d.dense != nil {
		sz, st := d.dense.shape.Sizes, d.dense.shape.Strides
		if uint(i0) < uint(sz[0]) && uint(i1) < uint(sz[1]) && uint(i2) < uint(sz[2]) {
			d.dense.Values[i0*st[0]+i1*st[1]+i2*st[2]] = val
			return nil
		}
	}
	return d.SetValue(val, i0, i1, i2)
}

// D4 is a shell over a tensor with 4 dimensions.
type D4[T any] struct {
	Tensor[T]
	dense *Dense[T]
}

// AsD4 returns a [D4] shell for the tensor, or [ErrArity]
// if it does not have 4 dimensions.
func AsD4[T any](tsr Tensor[T]) (D4[T], error) {
	if err := checkRank(tsr, 4); err != nil {
		return D4[T]{}, err
	}
	return D4[T]{tsr, denseOf(tsr)}, nil
}

func (d D4[T]) At(i0, i1, i2, i3 int) (T, error) {
	if d.dense != nil {
		sz, st := d.dense.shape.Sizes, d.dense.shape.Strides
		if uint(i0) < uint(sz[0]) && uint(i1) < uint(sz[1]) && uint(i2) < uint(sz[2]) && uint(i3) < uint(sz[3]) {
			return d.dense.Values[i0*st[0]+i1*st[1]+i2*st[2]+i3*st[3]], nil
		}
	}
	return d.Value(i0, i1, i2, i3)
}

func (d D4[T]) Set(val T, i0, i1, i2, i3 int) error {
	if d.dense != nil {
		sz, st := d.dense.shape.Sizes, d.dense.shape.Strides
		if uint(i0) < uint(sz[0]) && uint(i1) < uint(sz[1]) && uint(i2) < uint(sz[2]) && uint(i3) < uint(sz[3]) {
			d.dense.Values[i0*st[0]+i1*st[1]+i2*st[2]+i3*st[3]] = val
			return nil
		}
	}
	return d.SetValue(val, i0, i1, i2, i3)
}

// D5 is a shell over a tensor with 5 dimensions.
type D5[T any] struct {
	Tensor[T]
	dense *Dense[T]
}

// AsD5 returns a [D5] shell for the tensor, or [ErrArity]
// if it does not have 5 dimensions.
func AsD5[T any](tsr Tensor[T]) (D5[T], error) {
	if err := checkRank(tsr, 5); err != nil {
		return D5[T]{}, err
	}
	return D5[T]{tsr, denseOf(tsr)}, nil
}

func (d D5[T]) At(i0, i1, i2, i3, i4 int) (T, error) {
	if d.dense != nil {
		sz, st := d.dense.shape.Sizes, d.dense.shape.Strides
		if uint(i0) < uint(sz[0]) && uint(i1) < uint(sz[1]) && uint(i2) < uint(sz[2]) && uint(i3) < uint(sz[3]) && uint(i4) < uint(sz[4]) {
			return d.dense.Values[i0*st[0]+i1*st[1]+i2*st[2]+i3*st[3]+i4*st[4]], nil
		}
	}
	return d.Value(i0, i1, i2, i3, i4)
}

func (d D5[T]) Set(val T, i0, i1, i2, i3, i4 int) error {
	if d.dense != nil {
		sz, st := d.dense.shape.Sizes, d.dense.shape.Strides
		if uint(i0) < uint(sz[0]) && uint(i1) < uint(sz[1]) && uint(i2) < uint(sz[2]) && uint(i3) < uint(sz[3]) && uint(i4) < uint(sz[4]) {
			d.dense.Values[i0*st[0]+i1*st[1]+i2*st[2]+i3*st[3]+i4*st[4]] = val
			return nil
		}
	}
	return d.SetValue(val, i0, i1, i2, i3, i4)
}

// D6 is a shell over a tensor with 6 dimensions.
type D6[T any] struct {
	Tensor[T]
	dense *Dense[T]
}

// AsD6 returns a [D6] shell for the tensor, or [ErrArity]
// if it does not have 6 dimensions.
func AsD6[T any](tsr Tensor[T]) (D6[T], error) {
	if err := checkRank(tsr, 6); err != nil {
		return D6[T]{}, err
	}
	return D6[T]{tsr, denseOf(tsr)}, nil
}

func (d D6[T]) At(i0, i1, i2, i3, i4, i5 int) (T, error) {
	if d.dense != nil {
		sz, st := d.dense.shape.Sizes, d.dense.shape.Strides
		if uint(i0) < uint(sz[0]) && uint(i1) < uint(sz[1]) && uint(i2) < uint(sz[2]) && uint(i3) < uint(sz[3]) && uint(i4) < uint(sz[4]) && uint(i5) < uint(sz[5]) {
			return d.dense.Values[i0*st[0]+i1*st[1]+i2*st[2]+i3*st[3]+i4*st[4]+i5*st[5]], nil
		}
	}
	return d.Value(i0, i1, i2, i3, i4, i5)
}

func (d D6[T]) Set(val T, i0, i1, i2, i3, i4, i5 int) error {
	if d.dense != nil {
		sz, st := d.dense.shape.Sizes, d.dense.shape.Strides
		if uint(i0) < uint(sz[0]) && uint(i1) < uint(sz[1]) && uint(i2) < uint(sz[2]) && uint(i3) < uint(sz[3]) && uint(i4) < uint(sz[4]) && uint(i5) < uint(sz[5]) {
			d.dense.Values[i0*st[0]+i1*st[1]+i2*st[2]+i3*st[3]+i4*st[4]+i5*st[5]] = val
			return nil
		}
	}
	return d.SetValue(val, i0, i1, i2, i3, i4, i5)
}

// D7 is a shell over a tensor with 7 dimensions.
type D7[T any] struct {
	Tensor[T]
	dense *Dense[T]
}

// AsD7 returns a [D7] shell for the tensor, or [ErrArity]
// if it does not have 7 dimensions.
func AsD7[T any](tsr Tensor[T]) (D7[T], error) {
	if err := checkRank(tsr, 7); err != nil {
		return D7[T]{}, err
	}
	return D7[T]{tsr, denseOf(tsr)}, nil
}

func (d D7[T]) At(i0, i1, i2, i3, i4, i5, i6 int) (T, error) {
	if d.dense != nil {
		sz, st := d.dense.shape.Sizes, d.dense.shape.Strides
		if uint(i0) < uint(sz[0]) && uint(i1) < uint(sz[1]) && uint(i2) < uint(sz[2]) && uint(i3) < uint(sz[3]) && uint(i4) < uint(sz[4]) && uint(i5) < uint(sz[5]) && uint(i6) < uint(sz[6]) {
			return d.dense.Values[i0*st[0]+i1*st[1]+i2*st[2]+i3*st[3]+i4*st[4]+i5*st[5]+i6*st[6]], nil
		}
	}
	return d.Value(i0, i1, i2, i3, i4, i5, i6)
}

func (d D7[T]) Set(val T, i0, i1, i2, i3, i4, i5, i6 int) error {
	if d.dense != nil {
		sz, st := d.dense.shape.Sizes, d.dense.shape.Strides
		if uint(i0) < uint(sz[0]) && uint(i1) < uint(sz[1]) && uint(i2) < uint(sz[2]) && uint(i3) < uint(sz[3]) && uint(i4) < uint(sz[4]) && uint(i5) < uint(sz[5]) && uint(i6) < uint(sz[6]) {
			d.dense.Values[i0*st[0]+i1*st[1]+i2*st[2]+i3*st[3]+i4*st[4]+i5*st[5]+i6*st[6]] = val
			return nil
		}
	}
	return d.SetValue(val, i0, i1, i2, i3, i4, i5, i6)
}

// D8 is a shell over a tensor with 8 dimensions.
type D8[T any] struct {
	Tensor[T]
	dense *Dense[T]
}

// AsD8 returns a [D8] shell for the tensor, or [ErrArity]
// if it does not have 8 dimensions.
func AsD8[T any](tsr Tensor[T]) (D8[T], error) {
	if err := checkRank(tsr, 8); err != nil {
		return D8[T]{}, err
	}
	return D8[T]{tsr, denseOf(tsr)}, nil
}

func (d D8[T]) At(i0, i1, i2, i3, i4, i5, i6, i7 int) (T, error) {
	if d.dense != nil {
		sz, st := d.dense.shape.Sizes, d.dense.shape.Strides
		if uint(i0) < uint(sz[0]) && uint(i1) < uint(sz[1]) && uint(i2) < uint(sz[2]) && uint(i3) < uint(sz[3]) && uint(i4) < uint(sz[4]) && uint(i5) < uint(sz[5]) && uint(i6) < uint(sz[6]) && uint(i7) < uint(sz[7]) {
			return d.dense.Values[i0*st[0]+i1*st[1]+i2*st[2]+i3*st[3]+i4*st[4]+i5*st[5]+i6*st[6]+i7*st[7]], nil
		}
	}
	return d.Value(i0, i1, i2, i3, i4, i5, i6, i7)
}

func (d D8[T]) Set(val T, i0, i1, i2, i3, i4, i5, i6, i7 int) error {
	if d.dense != nil {
		sz, st := d.dense.shape.Sizes, d.dense.shape.Strides
		if uint(i0) < uint(sz[0]) && uint(i1) < uint(sz[1]) && uint(i2) < uint(sz[2]) && uint(i3) < uint(sz[3]) && uint(i4) < uint(sz[4]) && uint(i5) < uint(sz[5]) && uint(i6) < uint(sz[6]) && uint(i7) < uint(sz[7]) {
			d.dense.Values[i0*st[0]+i1*st[1]+i2*st[2]+i3*st[3]+i4*st[4]+i5*st[5]+i6*st[6]+i7*st[7]] = val
			return nil
		}
	}
	return d.SetValue(val, i0, i1, i2, i3, i4, i5, i6, i7)
}

// D9 is a shell over a tensor with 9 dimensions.
type D9[T any] struct {
	Tensor[T]
	dense *Dense[T]
}

// AsD9 returns a [D9] shell for the tensor, or [ErrArity]
// if it does not have 9 dimensions.
func AsD9[T any](tsr Tensor[T]) (D9[T], error) {
	if err := checkRank(tsr, 9); err != nil {
		return D9[T]{}, err
	}
	return D9[T]{tsr, denseOf(tsr)}, nil
}

func (d D9[T]) At(i0, i1, i2, i3, i4, i5, i6, i7, i8 int) (T, error) {
	if d.dense != nil {
		sz, st := d.dense.shape.Sizes, d.dense.shape.Strides
		if uint(i0) < uint(sz[0]) && uint(i1) < uint(sz[1]) && uint(i2) < uint(sz[2]) && uint(i3) < uint(sz[3]) && uint(i4) < uint(sz[4]) && uint(i5) < uint(sz[5]) && uint(i6) < uint(sz[6]) && uint(i7) < uint(sz[7]) && uint(i8) < uint(sz[8]) {
			return d.dense.Values[i0*st[0]+i1*st[1]+i2*st[2]+i3*st[3]+i4*st[4]+i5*st[5]+i6*st[6]+i7*st[7]+i8*st[8]], nil
		}
	}
	return d.Value(i0, i1, i2, i3, i4, i5, i6, i7, i8)
}

func (d D9[T]) Set(val T, i0, i1, i2, i3, i4, i5, i6, i7, i8 int) error {
	if d.dense != nil {
		sz, st := d.dense.shape.Sizes, d.dense.shape.Strides
		if uint(i0) < uint(sz[0]) && uint(i1) < uint(sz[1]) && uint(i2) < uint(sz[2]) && uint(i3) < uint(sz[3]) && uint(i4) < uint(sz[4]) && uint(i5) < uint(sz[5]) && uint(i6) < uint(sz[6]) && uint(i7) < uint(sz[7]) && uint(i8) < uint(sz[8]) {
			d.dense.Values[i0*st[0]+i1*st[1]+i2*st[2]+i3*st[3]+i4*st[4]+i5*st[5]+i6*st[6]+i7*st[7]+i8*st[8]] = val
			return nil
		}
	}
	return d.SetValue(val, i0, i1, i2, i3, i4, i5, i6, i7, i8)
}
