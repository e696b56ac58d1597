// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/tensor/base/metadata"
	"cogentcore.org/tensor/tensor"
	"cogentcore.org/tensor/tensor/tsragg"
)

// Run builds the tensor described by the config, applies any
// transpose and cast, and prints the result to w,
// followed by its summary statistics if requested.
func Run(cfg *Config, w io.Writer) error {
	kind, err := tensor.ParseKind(cfg.Kind)
	if err != nil {
		return err
	}
	var res fmt.Stringer
	switch kind {
	case tensor.Byte:
		res, err = build[int8](cfg)
	case tensor.Short:
		res, err = build[int16](cfg)
	case tensor.Int:
		res, err = build[int32](cfg)
	case tensor.Long:
		res, err = build[int64](cfg)
	case tensor.Float:
		res, err = build[float32](cfg)
	case tensor.Double:
		res, err = build[float64](cfg)
	default:
		return fmt.Errorf("tcast: kind %s: %w", kind, tensor.ErrUnsupportedKind)
	}
	if err != nil {
		return err
	}
	if cfg.Name != "" {
		metadata.SetName(res, cfg.Name)
	}
	if cfg.Doc != "" {
		metadata.SetDoc(res, cfg.Doc)
	}
	if doc := metadata.Doc(res); doc != "" {
		fmt.Fprintln(w, doc)
	}
	slog.Debug("tcast: result", "name", metadata.Name(res))
	if _, err := fmt.Fprint(w, res.String()); err != nil {
		return err
	}
	if !cfg.Stats {
		return nil
	}
	st, err := tsragg.DescribeAny(res)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, st.String())
	return err
}

func build[T tensor.Numeric](cfg *Config) (fmt.Stringer, error) {
	conv := tensor.Converter[float64, T]()
	tsr, err := newTensor(cfg.Backend, conv(cfg.Default), cfg.Sizes)
	if err != nil {
		return nil, err
	}
	slog.Debug("tcast: built tensor", "kind", tsr.Kind(), "backend", cfg.Backend, "sizes", cfg.Sizes)
	for _, c := range cfg.Cells {
		if err := tsr.SetValue(conv(c.Value), c.Coords...); err != nil {
			return nil, fmt.Errorf("tcast: cell %v: %w", c.Coords, err)
		}
	}
	if len(cfg.Transpose) > 0 {
		if tsr, err = tensor.Transpose(tsr, cfg.Transpose...); err != nil {
			return nil, err
		}
	}
	if cfg.Cast == "" {
		return tsr.(fmt.Stringer), nil
	}
	ck, err := tensor.ParseKind(cfg.Cast)
	if err != nil {
		return nil, err
	}
	cv, err := tensor.CastAny(tsr, ck)
	if err != nil {
		return nil, err
	}
	slog.Debug("tcast: cast", "from", tsr.Kind(), "to", ck)
	return cv.(fmt.Stringer), nil
}

func newTensor[T tensor.Numeric](backend string, def T, sizes []int) (tensor.Tensor[T], error) {
	switch backend {
	case "identity":
		return asTensor[T](tensor.NewIdentity[T](sizes...))
	case "zero":
		return asTensor[T](tensor.NewZero[T](sizes...))
	}
	f, ok := tensor.NewFactory[T](backend)
	if !ok {
		return nil, fmt.Errorf("tcast: unknown backend %q", backend)
	}
	return f.Filled(def, sizes...)
}

func asTensor[T any, P tensor.Tensor[T]](tsr P, err error) (tensor.Tensor[T], error) {
	if err != nil {
		return nil, err
	}
	return tsr, nil
}
