// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"strings"
)

// Kind is the element kind of a tensor: one of the eight primitive
// kinds, or Object for any other Go type.
type Kind int32

// The Go types used for each primitive kind are:
//
//	Bool   bool
//	Char   uint16
//	Byte   int8
//	Short  int16
//	Int    int32
//	Long   int64
//	Float  float32
//	Double float64
const (
	Object Kind = iota
	Bool
	Char
	Byte
	Short
	Int
	Long
	Float
	Double
)

var kindNames = [...]string{
	Object: "object",
	Bool:   "bool",
	Char:   "char",
	Byte:   "byte",
	Short:  "short",
	Int:    "int",
	Long:   "long",
	Float:  "float",
	Double: "double",
}

var kindSizes = [...]int{
	Bool:   1,
	Char:   2,
	Byte:   1,
	Short:  2,
	Int:    4,
	Long:   8,
	Float:  4,
	Double: 8,
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int32(k))
	}
	return kindNames[k]
}

// ParseKind returns the kind with the given name (case insensitive).
func ParseKind(s string) (Kind, error) {
	ls := strings.ToLower(strings.TrimSpace(s))
	for k, nm := range kindNames {
		if nm == ls {
			return Kind(k), nil
		}
	}
	return Object, fmt.Errorf("tensor.ParseKind: %q: %w", s, ErrUnsupportedKind)
}

// IsNumeric returns true for the six numeric kinds
// (Byte through Double). Char is not numeric.
func (k Kind) IsNumeric() bool { return k >= Byte && k <= Double }

// IsInteger returns true for Byte, Short, Int and Long.
func (k Kind) IsInteger() bool { return k >= Byte && k <= Long }

// IsFloat returns true for Float and Double.
func (k Kind) IsFloat() bool { return k == Float || k == Double }

// Size returns the size in bytes of one element, 0 for Object.
func (k Kind) Size() int {
	if k <= Object || int(k) >= len(kindSizes) {
		return 0
	}
	return kindSizes[k]
}

// Numeric is the set of Go types for the numeric kinds.
// Casts and conversions are defined between any two of them.
type Numeric interface {
	int8 | int16 | int32 | int64 | float32 | float64
}

// Primitive is the set of Go types with a primitive kind.
type Primitive interface {
	Numeric | bool | uint16
}

// KindOf returns the kind for the Go type T.
func KindOf[T any]() Kind {
	var v T
	switch any(v).(type) {
	case bool:
		return Bool
	case uint16:
		return Char
	case int8:
		return Byte
	case int16:
		return Short
	case int32:
		return Int
	case int64:
		return Long
	case float32:
		return Float
	case float64:
		return Double
	}
	return Object
}
