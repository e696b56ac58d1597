// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tcast builds a tensor from a TOML or YAML config file
// and command line flags, optionally viewing it transposed and
// cast to another kind, and prints it.
//
//	tcast [flags] [config.toml|config.yaml]
package main

import (
	"log/slog"
	"os"

	"cogentcore.org/tensor/base/errors"
	"cogentcore.org/tensor/cli"
	"cogentcore.org/tensor/logx"
	"github.com/spf13/cobra"
)

func main() {
	logx.SetDefaultLogger()
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newCommand returns the root command, with flags
// overriding the values of the config file.
func newCommand() *cobra.Command {
	cfg := &Config{}
	errors.Must(cli.SetFromDefaults(cfg))
	var verbose bool
	cmd := &cobra.Command{
		Use:          "tcast [config file]",
		Short:        "Build, view and cast a tensor",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logx.UserLevel.Set(slog.LevelDebug)
			}
			if len(args) == 1 {
				file := &Config{}
				errors.Must(cli.SetFromDefaults(file))
				if err := cli.Open(file, args[0]); err != nil {
					return err
				}
				applyFlags(cmd, cfg, file)
				cfg = file
			}
			return Run(cfg, cmd.OutOrStdout())
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&cfg.Name, "name", "n", cfg.Name, "name labeling the tensor")
	fs.StringVarP(&cfg.Kind, "kind", "k", cfg.Kind, "element kind")
	fs.StringVarP(&cfg.Backend, "backend", "b", cfg.Backend, "storage backend: dense, sparse, uniform, identity or zero")
	fs.IntSliceVarP(&cfg.Sizes, "sizes", "s", cfg.Sizes, "sizes of the dimensions")
	fs.Float64VarP(&cfg.Default, "default", "d", cfg.Default, "fill or default value")
	fs.IntSliceVarP(&cfg.Transpose, "transpose", "t", cfg.Transpose, "permutation of the dimensions")
	fs.StringVarP(&cfg.Cast, "cast", "c", cfg.Cast, "kind to cast the result to")
	fs.BoolVar(&cfg.Stats, "stats", cfg.Stats, "print summary statistics")
	fs.BoolVarP(&verbose, "verbose", "v", false, "log debug messages")
	return cmd
}

// applyFlags copies the flags that were set on the command line
// from flg into cfg, so that they override the config file.
func applyFlags(cmd *cobra.Command, flg, cfg *Config) {
	fs := cmd.Flags()
	if fs.Changed("name") {
		cfg.Name = flg.Name
	}
	if fs.Changed("kind") {
		cfg.Kind = flg.Kind
	}
	if fs.Changed("backend") {
		cfg.Backend = flg.Backend
	}
	if fs.Changed("sizes") {
		cfg.Sizes = flg.Sizes
	}
	if fs.Changed("default") {
		cfg.Default = flg.Default
	}
	if fs.Changed("transpose") {
		cfg.Transpose = flg.Transpose
	}
	if fs.Changed("cast") {
		cfg.Cast = flg.Cast
	}
	if fs.Changed("stats") {
		cfg.Stats = flg.Stats
	}
}
