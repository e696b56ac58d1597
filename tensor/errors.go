// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import "cogentcore.org/tensor/base/errors"

// Sentinel errors returned (wrapped with context) by tensor operations.
// Use [errors.Is] to test for them.
var (
	// ErrArity is returned when the number of coordinates
	// differs from the number of dimensions.
	ErrArity = errors.New("tensor: wrong number of coordinates")

	// ErrRange is returned when a coordinate is outside [0, size).
	ErrRange = errors.New("tensor: coordinate out of range")

	// ErrShapeMismatch is returned by bulk operations between
	// tensors or arrays of different shapes.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrImmutable is returned when writing to a Uniform,
	// Identity or Zero tensor.
	ErrImmutable = errors.New("tensor: tensor is not modifiable")

	// ErrInvalidIndex is returned when an index cannot map
	// onto the shape of the tensor it is applied to.
	ErrInvalidIndex = errors.New("tensor: invalid index")

	// ErrCapacityOverflow is returned when the number of cells
	// of a shape cannot be represented.
	ErrCapacityOverflow = errors.New("tensor: capacity overflow")

	// ErrInvalidShape is returned for shapes with a dimension size < 1.
	ErrInvalidShape = errors.New("tensor: dimension sizes must be >= 1")

	// ErrUnsupportedKind is returned when an operation does not
	// support the element kind(s) involved.
	ErrUnsupportedKind = errors.New("tensor: unsupported element kind")
)
