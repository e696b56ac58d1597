// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inner struct {
	Level int `default:"3"`
}

type testConfig struct {
	Name    string    `default:"grid" toml:"name" yaml:"name"`
	On      bool      `default:"true" toml:"on" yaml:"on"`
	Sizes   []int     `default:"2, 3" toml:"sizes" yaml:"sizes"`
	Scale   float32   `default:"0.5" toml:"scale" yaml:"scale"`
	Weights []float64 `default:"" toml:"weights" yaml:"weights"`
	Inner   inner     `toml:"inner" yaml:"inner"`
	plain   int
}

func TestSetFromDefaults(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, SetFromDefaults(cfg))
	assert.Equal(t, "grid", cfg.Name)
	assert.True(t, cfg.On)
	assert.Equal(t, []int{2, 3}, cfg.Sizes)
	assert.Equal(t, float32(0.5), cfg.Scale)
	assert.Equal(t, []float64{}, cfg.Weights)
	assert.Equal(t, 3, cfg.Inner.Level)
	assert.Equal(t, 0, cfg.plain)

	assert.Error(t, SetFromDefaults(*cfg))

	type bad struct {
		N int `default:"x"`
	}
	assert.Error(t, SetFromDefaults(&bad{}))
}

func TestRead(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, SetFromDefaults(cfg))
	require.NoError(t, Read(cfg, []byte("name = \"a\"\nsizes = [4]\n"), ".toml"))
	assert.Equal(t, "a", cfg.Name)
	assert.Equal(t, []int{4}, cfg.Sizes)
	assert.True(t, cfg.On)

	require.NoError(t, Read(cfg, []byte("name: b\ninner:\n  level: 7\n"), ".yml"))
	assert.Equal(t, "b", cfg.Name)
	assert.Equal(t, 7, cfg.Inner.Level)

	assert.Error(t, Read(cfg, nil, ".json"))
}

func TestOpen(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(file, []byte("scale: 2\n"), 0o666))
	cfg := &testConfig{}
	require.NoError(t, Open(cfg, file))
	assert.Equal(t, float32(2), cfg.Scale)

	assert.Error(t, Open(cfg, filepath.Join(t.TempDir(), "none.toml")))
}
