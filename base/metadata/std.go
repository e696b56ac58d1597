// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metadata

import "fmt"

// Metadataer is implemented by types that carry [Data].
type Metadataer interface {
	Metadata() *Data
}

// SetTo sets the key on the metadata of given object,
// returning an error if it does not carry metadata.
func SetTo(obj any, key string, value any) error {
	md, ok := obj.(Metadataer)
	if !ok {
		return fmt.Errorf("metadata.SetTo: type %T does not have metadata", obj)
	}
	md.Metadata().Set(key, value)
	return nil
}

// GetFrom gets the typed value for the key from the metadata
// of given object.
func GetFrom[T any](obj any, key string) (T, error) {
	md, ok := obj.(Metadataer)
	if !ok {
		var z T
		return z, fmt.Errorf("metadata.GetFrom: type %T does not have metadata", obj)
	}
	return Get[T](*md.Metadata(), key)
}

// SetName sets the "Name" standard key.
func SetName(obj any, name string) {
	SetTo(obj, "Name", name)
}

// Name returns the "Name" standard key value (empty if not set).
func Name(obj any) string {
	nm, _ := GetFrom[string](obj, "Name")
	return nm
}

// SetDoc sets the "Doc" standard key.
func SetDoc(obj any, doc string) {
	SetTo(obj, "Doc", doc)
}

// Doc returns the "Doc" standard key value (empty if not set).
func Doc(obj any) string {
	doc, _ := GetFrom[string](obj, "Doc")
	return doc
}
