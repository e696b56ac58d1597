// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Converter returns the function converting numeric values of type S
// to type D, used by cast views and copies:
//
//   - integer to integer: Go conversion, exact when widening,
//     two's complement wraparound when narrowing.
//   - integer to float, float32 to float64: Go conversion.
//   - float64 to float32: Go conversion, which may lose precision.
//   - float to integer: round half away from zero, saturate to the
//     int64 range (NaN gives 0), then convert to D, wrapping when
//     D is narrower than int64.
func Converter[S, D Numeric]() func(S) D {
	if KindOf[D]().IsInteger() {
		switch KindOf[S]() {
		case Float:
			return func(v S) D { return D(roundToInt64(float32(v), math32.Round)) }
		case Double:
			return func(v S) D { return D(roundToInt64(float64(v), math.Round)) }
		}
	}
	return func(v S) D { return D(v) }
}

// Convert converts one value from S to D; see [Converter].
func Convert[S, D Numeric](v S) D {
	return Converter[S, D]()(v)
}

// roundToInt64 rounds with the given function and saturates to int64.
func roundToInt64[F constraints.Float](f F, round func(F) F) int64 {
	r := float64(round(f))
	switch {
	case math.IsNaN(r):
		return 0
	case r >= 0x1p63:
		return math.MaxInt64
	case r < -0x1p63:
		return math.MinInt64
	}
	return int64(r)
}
