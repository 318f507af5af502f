/*
Copyright 2024 The Corvus Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cverrors

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corvusdb.io/corvus/go/cv/proto/cvrpc"
)

func TestCode(t *testing.T) {
	assert.Equal(t, cvrpc.Code_OK, Code(nil))
	assert.Equal(t, cvrpc.Code_UNKNOWN, Code(io.EOF))
	assert.Equal(t, cvrpc.Code_INVALID_ARGUMENT, Code(New(cvrpc.Code_INVALID_ARGUMENT, "bad")))
	assert.Equal(t, cvrpc.Code_UNIMPLEMENTED, Code(Errorf(cvrpc.Code_UNIMPLEMENTED, "no %s yet", "feature")))
}

func TestWrapKeepsCode(t *testing.T) {
	base := New(cvrpc.Code_UNIMPLEMENTED, "not supported")
	wrapped := Wrapf(base, "column %s", "c")

	require.Error(t, wrapped)
	assert.Equal(t, "column c: not supported", wrapped.Error())
	assert.Equal(t, cvrpc.Code_UNIMPLEMENTED, Code(wrapped))
	assert.True(t, errors.Is(wrapped, base))

	assert.NoError(t, Wrap(nil, "ignored"))
}

func TestBugf(t *testing.T) {
	err := Bugf("impossible operator %d", 99)
	assert.Equal(t, cvrpc.Code_INTERNAL, Code(err))
	assert.Equal(t, "[BUG] impossible operator 99", err.Error())
}
