// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTest = New("test error")

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	assert.ErrorIs(t, Log(errTest), errTest)
	assert.Equal(t, "x", Ignore1("x", errTest))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(errTest) })
	assert.Equal(t, 2, Must1(2, nil))
	assert.Panics(t, func() { Must1(2, errTest) })
}

func TestWrap(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", errTest)
	assert.True(t, Is(err, errTest))
	assert.False(t, Is(New("test error"), errTest))
	assert.True(t, Is(Join(nil, err), errTest))
}
