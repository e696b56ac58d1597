// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up the default structured logger, with
// a user-controlled level and colored level labels on terminals
// that support them.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity level of the default logger.
// It defaults to Info, Debug with the debug build tag,
// and Warn with the release build tag.
var UserLevel = func() *slog.LevelVar {
	lv := &slog.LevelVar{}
	lv.Set(defaultUserLevel)
	return lv
}()

// SetDefaultLogger installs a text logger writing to stderr
// as the [slog] default.
func SetDefaultLogger() {
	slog.SetDefault(NewLogger(os.Stderr))
}

// NewLogger returns a text logger writing to w at [UserLevel],
// with level labels colored according to the color profile of w.
func NewLogger(w io.Writer) *slog.Logger {
	out := termenv.NewOutput(w)
	opts := &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			if lvl, ok := a.Value.Any().(slog.Level); ok {
				a.Value = slog.StringValue(LevelLabel(out, lvl))
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// LevelLabel returns the level name styled for the given output.
// Outputs without color support get the plain name.
func LevelLabel(out *termenv.Output, lvl slog.Level) string {
	s := out.String(lvl.String())
	switch {
	case lvl >= slog.LevelError:
		s = s.Foreground(termenv.ANSIRed).Bold()
	case lvl >= slog.LevelWarn:
		s = s.Foreground(termenv.ANSIYellow)
	case lvl >= slog.LevelInfo:
		s = s.Foreground(termenv.ANSICyan)
	default:
		s = s.Faint()
	}
	return s.String()
}
