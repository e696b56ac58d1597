// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
)

// CopyInto copies all values of src into dst, which must have the same
// shape, converting each value with [Converter]. The results are the
// same as reading through a [Cast] view of src.
func CopyInto[S, D Numeric](src Tensor[S], dst Tensor[D]) error {
	if err := MustBeSameShape(src.ShapeSizes(), dst.ShapeSizes()); err != nil {
		return fmt.Errorf("tensor.CopyInto: %w", err)
	}
	vals, err := Values(src)
	if err != nil {
		return err
	}
	conv := Converter[S, D]()
	out := &Array[D]{Sizes: vals.Sizes, Values: make([]D, len(vals.Values))}
	for i, v := range vals.Values {
		out.Values[i] = conv(v)
	}
	return SetAll(dst, out)
}

// CopyAny is the run-time version of [CopyInto], for tensors of any two
// numeric kinds, passed as any. It returns [ErrUnsupportedKind] if either
// is not a numeric tensor.
func CopyAny(src, dst any) error {
	switch s := src.(type) {
	case Tensor[int8]:
		return copyFrom(s, dst)
	case Tensor[int16]:
		return copyFrom(s, dst)
	case Tensor[int32]:
		return copyFrom(s, dst)
	case Tensor[int64]:
		return copyFrom(s, dst)
	case Tensor[float32]:
		return copyFrom(s, dst)
	case Tensor[float64]:
		return copyFrom(s, dst)
	}
	return fmt.Errorf("tensor.CopyAny: source %T: %w", src, ErrUnsupportedKind)
}

func copyFrom[S Numeric](src Tensor[S], dst any) error {
	switch d := dst.(type) {
	case Tensor[int8]:
		return CopyInto(src, d)
	case Tensor[int16]:
		return CopyInto(src, d)
	case Tensor[int32]:
		return CopyInto(src, d)
	case Tensor[int64]:
		return CopyInto(src, d)
	case Tensor[float32]:
		return CopyInto(src, d)
	case Tensor[float64]:
		return CopyInto(src, d)
	}
	return fmt.Errorf("tensor.CopyAny: destination %T: %w", dst, ErrUnsupportedKind)
}

// CastAny is the run-time version of [Cast], returning a cast view of
// the numeric tensor src presenting the given numeric kind.
// It returns [ErrUnsupportedKind] for other tensors and kinds.
func CastAny(src any, kind Kind) (any, error) {
	switch s := src.(type) {
	case Tensor[int8]:
		return castTo(s, kind)
	case Tensor[int16]:
		return castTo(s, kind)
	case Tensor[int32]:
		return castTo(s, kind)
	case Tensor[int64]:
		return castTo(s, kind)
	case Tensor[float32]:
		return castTo(s, kind)
	case Tensor[float64]:
		return castTo(s, kind)
	}
	return nil, fmt.Errorf("tensor.CastAny: source %T: %w", src, ErrUnsupportedKind)
}

func castTo[S Numeric](src Tensor[S], kind Kind) (any, error) {
	switch kind {
	case Byte:
		return Cast[S, int8](src), nil
	case Short:
		return Cast[S, int16](src), nil
	case Int:
		return Cast[S, int32](src), nil
	case Long:
		return Cast[S, int64](src), nil
	case Float:
		return Cast[S, float32](src), nil
	case Double:
		return Cast[S, float64](src), nil
	}
	return nil, fmt.Errorf("tensor.CastAny: kind %s: %w", kind, ErrUnsupportedKind)
}

// As1D returns a 1D tensor, which is either the input tensor if it is
// already 1D, or a new [Reshape] 1D view of it.
func As1D[T any](tsr Tensor[T]) (Tensor[T], error) {
	if tsr.NumDims() == 1 {
		return tsr, nil
	}
	return Reshape(tsr, tsr.Len())
}

// Squeeze returns a [Reshape] view of given tensor with all singleton
// (size = 1) dimensions removed (if none, just returns the tensor).
func Squeeze[T any](tsr Tensor[T]) (Tensor[T], error) {
	sh := tsr.ShapeSizes()
	reshape := make([]int, 0, len(sh))
	for _, sz := range sh {
		if sz > 1 {
			reshape = append(reshape, sz)
		}
	}
	if len(reshape) == len(sh) {
		return tsr, nil
	}
	return Reshape(tsr, reshape...)
}

// AsFloat64Slice returns all the tensor values as a new slice of
// float64 values in row-major order.
func AsFloat64Slice[T Numeric](tsr Tensor[T]) ([]float64, error) {
	vals, err := Values(tsr)
	if err != nil {
		return nil, err
	}
	conv := Converter[T, float64]()
	out := make([]float64, len(vals.Values))
	for i, v := range vals.Values {
		out[i] = conv(v)
	}
	return out, nil
}
