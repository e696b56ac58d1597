// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/tensor/cli"
	"cogentcore.org/tensor/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(t *testing.T) *Config {
	t.Helper()
	cfg := &Config{}
	require.NoError(t, cli.SetFromDefaults(cfg))
	return cfg
}

func TestRun(t *testing.T) {
	cfg := defaultConfig(t)
	assert.Equal(t, "double", cfg.Kind)
	assert.Equal(t, []int{2, 2}, cfg.Sizes)

	cfg.Kind = "long"
	cfg.Backend = "sparse"
	cfg.Cells = []Cell{{Coords: []int{0, 1}, Value: 7}}
	cfg.Cast = "double"
	var b bytes.Buffer
	require.NoError(t, Run(cfg, &b))
	assert.Equal(t, "Tensor double [2, 2]\n[0]:\t0 7\n[1]:\t0 0\n", b.String())

	cfg = defaultConfig(t)
	cfg.Backend = "identity"
	cfg.Sizes = []int{3, 3}
	cfg.Transpose = []int{1, 0}
	b.Reset()
	require.NoError(t, Run(cfg, &b))
	assert.Equal(t, "Tensor double [3, 3]\n[0]:\t1 0 0\n[1]:\t0 1 0\n[2]:\t0 0 1\n", b.String())

	cfg = defaultConfig(t)
	cfg.Sizes = []int{2}
	cfg.Default = 2.5
	cfg.Cast = "long"
	b.Reset()
	require.NoError(t, Run(cfg, &b))
	assert.Equal(t, "Tensor long [2]\n3 3\n", b.String())

	cfg.Stats = true
	b.Reset()
	require.NoError(t, Run(cfg, &b))
	assert.Equal(t, "Tensor long [2]\n3 3\ncount=2 sum=6 mean=3 min=3 max=3 std=0\n", b.String())
}

func TestRunErrors(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Kind = "bool"
	assert.ErrorIs(t, Run(cfg, &bytes.Buffer{}), tensor.ErrUnsupportedKind)

	cfg = defaultConfig(t)
	cfg.Backend = "uniform"
	cfg.Cells = []Cell{{Coords: []int{0, 0}, Value: 1}}
	assert.ErrorIs(t, Run(cfg, &bytes.Buffer{}), tensor.ErrImmutable)

	cfg = defaultConfig(t)
	cfg.Cells = []Cell{{Coords: []int{0}, Value: 1}}
	assert.ErrorIs(t, Run(cfg, &bytes.Buffer{}), tensor.ErrArity)

	cfg = defaultConfig(t)
	cfg.Backend = "tiled"
	assert.Error(t, Run(cfg, &bytes.Buffer{}))

	cfg = defaultConfig(t)
	cfg.Cast = "char"
	assert.ErrorIs(t, Run(cfg, &bytes.Buffer{}), tensor.ErrUnsupportedKind)
}

func TestCommand(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tsr.yaml")
	cfg := "kind: int\nsizes: [3]\ncells:\n  - coords: [1]\n    value: 4\n"
	require.NoError(t, os.WriteFile(file, []byte(cfg), 0o666))

	cmd := newCommand()
	var b bytes.Buffer
	cmd.SetOut(&b)
	cmd.SetArgs([]string{file, "--cast", "float"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Tensor float [3]\n0 4 0\n", b.String())

	cmd = newCommand()
	b.Reset()
	cmd.SetOut(&b)
	cmd.SetArgs([]string{"-k", "short", "-s", "1,2", "-d", "-1"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Tensor short [1, 2]\n[0]:\t-1 -1\n", b.String())
}

func TestRunName(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Name = "skim"
	cfg.Doc = "travel times"
	cfg.Sizes = []int{2}
	cfg.Default = 1.5
	cfg.Cast = "int"
	var b bytes.Buffer
	require.NoError(t, Run(cfg, &b))
	assert.Equal(t, "travel times\nskim int [2]\n2 2\n", b.String())

	cmd := newCommand()
	b.Reset()
	cmd.SetOut(&b)
	cmd.SetArgs([]string{"-n", "odd", "-s", "1"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "odd double [1]\n0\n", b.String())
}
