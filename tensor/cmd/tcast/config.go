// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

// Config is the configuration of a tensor built by tcast.
type Config struct {

	// Name labels the printed tensor.
	Name string `default:"" toml:"name" yaml:"name"`

	// Doc is a description printed before the tensor, if not empty.
	Doc string `default:"" toml:"doc" yaml:"doc"`

	// Kind is the element kind: byte, short, int, long, float or double.
	Kind string `default:"double" toml:"kind" yaml:"kind"`

	// Backend is the storage: dense, sparse, uniform, identity or zero.
	Backend string `default:"dense" toml:"backend" yaml:"backend"`

	// Sizes of the dimensions.
	Sizes []int `default:"2,2" toml:"sizes" yaml:"sizes"`

	// Default is the fill value for dense and uniform tensors,
	// and the default value for sparse tensors.
	Default float64 `default:"0" toml:"default" yaml:"default"`

	// Cells are values to set after construction.
	Cells []Cell `toml:"cells" yaml:"cells"`

	// Transpose is a permutation of the dimensions to view the tensor through.
	Transpose []int `default:"" toml:"transpose" yaml:"transpose"`

	// Cast is the kind to view the result as, if not empty.
	Cast string `default:"" toml:"cast" yaml:"cast"`

	// Stats prints summary statistics of the result.
	Stats bool `default:"false" toml:"stats" yaml:"stats"`
}

// Cell is one value to set at given coordinates.
type Cell struct {
	Coords []int   `toml:"coords" yaml:"coords"`
	Value  float64 `toml:"value" yaml:"value"`
}
