// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"math"
)

// CheckArity returns [ErrArity] if the number of coordinates
// does not match the number of dimension sizes.
func CheckArity(sizes, coords []int) error {
	if len(coords) != len(sizes) {
		return fmt.Errorf("tensor: %d coordinates for %d dimensions: %w", len(coords), len(sizes), ErrArity)
	}
	return nil
}

// CheckCoords checks the arity of the coordinates and then that
// each coordinate is within [0, size) of its dimension,
// returning [ErrArity] or [ErrRange].
func CheckCoords(sizes, coords []int) error {
	if err := CheckArity(sizes, coords); err != nil {
		return err
	}
	for d, c := range coords {
		if c < 0 || c >= sizes[d] {
			return fmt.Errorf("tensor: coordinate %d in dimension %d of size %d: %w", c, d, sizes[d], ErrRange)
		}
	}
	return nil
}

// CheckSizes returns [ErrInvalidShape] if any dimension size is < 1.
func CheckSizes(sizes []int) error {
	for d, sz := range sizes {
		if sz < 1 {
			return fmt.Errorf("tensor: size %d for dimension %d: %w", sz, d, ErrInvalidShape)
		}
	}
	return nil
}

// CellCount returns the product of the sizes, checking each
// multiplication for overflow beyond max. It returns
// [ErrCapacityOverflow] if the product would exceed max.
func CellCount(sizes []int, max int64) (int64, error) {
	n := int64(1)
	for _, sz := range sizes {
		s := int64(sz)
		if s > 1 && n > max/s {
			return 0, fmt.Errorf("tensor: shape %v exceeds %d cells: %w", sizes, max, ErrCapacityOverflow)
		}
		n *= s
	}
	return n, nil
}

// checkedLen validates sizes and returns the number of cells,
// which must be addressable by an int.
func checkedLen(sizes []int) (int, error) {
	if err := CheckSizes(sizes); err != nil {
		return 0, err
	}
	n, err := CellCount(sizes, math.MaxInt)
	return int(n), err
}
