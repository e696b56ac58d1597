// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"strings"

	"cogentcore.org/tensor/base/errors"
)

// MaxSprintLength is the default maximum number of values
// printed by [Sprint].
var MaxSprintLength = 1000

// Sprint returns a string representation of the tensor: a label line
// with name, kind and shape, followed by the values. 1D tensors print
// on one line, 2D tensors as rows, and higher ranks as a sequence of
// 2D tensors along the trailing dimensions. Values that cannot be read
// are logged and printed as ?.
func Sprint[T any](tsr Tensor[T]) string {
	var b strings.Builder
	b.WriteString(label(tsr.Metadata().Name(), tsr.Kind(), tsr.ShapeSizes()))
	b.WriteString("\n")
	n := 0
	sprintTo(&b, tsr, nil, &n)
	return b.String()
}

func sprintTo[T any](b *strings.Builder, tsr Tensor[T], trail []int, n *int) {
	switch tsr.NumDims() {
	case 0:
		b.WriteString(sprintValue(tsr))
		b.WriteString("\n")
	case 1:
		sprintRow(b, tsr, n)
	case 2:
		for r := range tsr.DimSize(0) {
			if *n >= MaxSprintLength {
				return
			}
			fmt.Fprintf(b, "[%d]:\t", r)
			row, err := SubTensor(tsr, 0, r)
			if errors.Log(err) != nil {
				return
			}
			sprintRow[T](b, row, n)
		}
	default:
		for k, sub := range Iterate(tsr) {
			if *n >= MaxSprintLength {
				return
			}
			st := append([]int{k}, trail...)
			fmt.Fprintf(b, "[..., %s]:\n", strings.Trim(SizesString(st), "[]"))
			sprintTo(b, sub, st, n)
		}
	}
}

func sprintRow[T any](b *strings.Builder, tsr Tensor[T], n *int) {
	for i := range tsr.DimSize(0) {
		if *n >= MaxSprintLength {
			b.WriteString("...")
			break
		}
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(sprintValue(tsr, i))
		*n++
	}
	b.WriteString("\n")
}

func sprintValue[T any](tsr Tensor[T], i ...int) string {
	v, err := tsr.Value(i...)
	if errors.Log(err) != nil {
		return "?"
	}
	return fmt.Sprint(v)
}
