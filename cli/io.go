// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Open reads the config object from the given file, which is
// TOML or YAML according to its extension (.toml, .yaml or .yml).
// Values not present in the file are left unchanged, so defaults
// should be set first with [SetFromDefaults].
func Open(cfg any, file string) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	if err := Read(cfg, b, filepath.Ext(file)); err != nil {
		return fmt.Errorf("cli.Open %q: %w", file, err)
	}
	return nil
}

// Read reads the config object from the given bytes,
// in the format given by the file extension.
func Read(cfg any, b []byte, ext string) error {
	switch strings.ToLower(ext) {
	case ".toml":
		return toml.Unmarshal(b, cfg)
	case ".yaml", ".yml":
		return yaml.Unmarshal(b, cfg)
	}
	return fmt.Errorf("cli.Read: unsupported config file type %q", ext)
}
