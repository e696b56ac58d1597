// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli provides the configuration support of the command line
// tools: `default:` struct tags, and config files in TOML or YAML.
package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"cogentcore.org/tensor/base/errors"
)

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
//
// Supported field types are strings, bools, ints, floats and slices of
// them, which take comma separated values. Struct fields without a
// default tag are set recursively.
func SetFromDefaults(cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return errors.Log(fmt.Errorf("cli.SetFromDefaults: need a pointer to a struct, not %T", cfg))
	}
	return errors.Log(setFromDefaults(v.Elem()))
}

func setFromDefaults(v reflect.Value) error {
	typ := v.Type()
	var errs []error
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok {
			if fv.Kind() == reflect.Struct {
				errs = append(errs, setFromDefaults(fv))
			}
			continue
		}
		if err := setString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("field %s: %w", f.Name, err))
		}
	}
	return errors.Join(errs...)
}

// setString sets the value from its string representation.
func setString(v reflect.Value, s string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Float32, reflect.Float64:
		x, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(x)
	case reflect.Slice:
		if s == "" {
			v.Set(reflect.MakeSlice(v.Type(), 0, 0))
			return nil
		}
		parts := strings.Split(s, ",")
		sl := reflect.MakeSlice(v.Type(), len(parts), len(parts))
		for i, p := range parts {
			if err := setString(sl.Index(i), strings.TrimSpace(p)); err != nil {
				return err
			}
		}
		v.Set(sl)
	default:
		return fmt.Errorf("unsupported type %s", v.Type())
	}
	return nil
}
