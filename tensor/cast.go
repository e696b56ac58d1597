// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"cogentcore.org/tensor/base/metadata"
)

// caster is implemented by all cast views.
type caster interface {
	Unwrapper
	isCast()
}

// CastView presents a source tensor of numeric type S as a tensor
// of numeric type D, converting on every read (S to D) and write
// (D to S) according to the rules of [Converter]. It holds no values.
type CastView[S, D Numeric] struct {

	// source tensor.
	source Tensor[S]

	// wrapsCast is true when the source is itself a cast view.
	wrapsCast bool

	to   func(S) D
	from func(D) S
}

// Cast returns a [CastView] presenting src as a tensor of type D.
func Cast[S, D Numeric](src Tensor[S]) *CastView[S, D] {
	_, wc := src.(caster)
	return &CastView[S, D]{source: src, wrapsCast: wc, to: Converter[S, D](), from: Converter[D, S]()}
}

func (cv *CastView[S, D]) isCast() {}

// Source returns the tensor this is a direct view onto.
func (cv *CastView[S, D]) Source() Tensor[S] { return cv.source }

// WrapsCast returns true if the source is itself a cast view.
func (cv *CastView[S, D]) WrapsCast() bool { return cv.wrapsCast }

// Unwrap returns the innermost concrete tensor holding the values,
// following any chain of cast and reference views.
func (cv *CastView[S, D]) Unwrap() any {
	if cv.wrapsCast {
		return cv.source.(caster).Unwrap()
	}
	return Innermost(cv.source)
}

func (cv *CastView[S, D]) String() string           { return Sprint[D](cv) }
func (cv *CastView[S, D]) ShapeSizes() []int        { return cv.source.ShapeSizes() }
func (cv *CastView[S, D]) NumDims() int             { return cv.source.NumDims() }
func (cv *CastView[S, D]) DimSize(dim int) int      { return cv.source.DimSize(dim) }
func (cv *CastView[S, D]) Len() int                 { return cv.source.Len() }
func (cv *CastView[S, D]) Kind() Kind               { return KindOf[D]() }
func (cv *CastView[S, D]) Index() Index             { return cv.source.Index() }
func (cv *CastView[S, D]) Metadata() *metadata.Data { return cv.source.Metadata() }

func (cv *CastView[S, D]) Value(i ...int) (D, error) {
	v, err := cv.source.Value(i...)
	if err != nil {
		return 0, err
	}
	return cv.to(v), nil
}

func (cv *CastView[S, D]) SetValue(val D, i ...int) error {
	return cv.source.SetValue(cv.from(val), i...)
}

// check for interface impl
var _ Tensor[float64] = (*CastView[int64, float64])(nil)
