// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error functions that are helpful
// for dealing with errors in the common case where the error is
// logged at the point where it arises, and then passed on unchanged.
// It re-exports the standard library New, Is and Join, so it can be
// used in place of the standard errors package.
package errors

import (
	"errors"
	"log/slog"
	"runtime"
	"strconv"
)

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	return errors.Log(MyFunc(v))
//	// or
//	return errors.Log(fmt.Errorf("example error: %v", v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Must takes the given error and panics if it is non-nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 takes the given value and error and returns the value if
// the error is nil, and panics if the error is non-nil.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Ignore1 ignores an error return value for a function returning
// a value and an error, allowing direct usage of the value.
// The intended usage is:
//
//	a := errors.Ignore1(MyFunc(v))
func Ignore1[T any](v T, err error) T {
	return v
}

// CallerInfo returns string information about the caller
// of the function that called CallerInfo.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	return runtime.FuncForPC(pc).Name() + " " + file + ":" + strconv.Itoa(line)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Join returns an error that wraps the given errors, discarding nils.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
