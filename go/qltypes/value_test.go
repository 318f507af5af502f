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

package qltypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValues(t *testing.T) {
	v := NewInt64(42)
	assert.Equal(t, Int64, v.Type())
	assert.Equal(t, []byte("42"), v.Raw())
	assert.False(t, v.IsNull())

	assert.True(t, NULL.IsNull())
	assert.Equal(t, Null, MakeTrusted(Null, []byte("ignored")).Type())

	list := NewList(NewInt64(1), NewText("a"))
	assert.True(t, list.IsList())
	assert.Len(t, list.List(), 2)
	assert.Nil(t, list.Raw())
}

func TestToInt64(t *testing.T) {
	i, err := NewInt64(-5).ToInt64()
	require.NoError(t, err)
	assert.Equal(t, int64(-5), i)

	i, err = NewInt32(7).ToInt64()
	require.NoError(t, err)
	assert.Equal(t, int64(7), i)

	_, err = NewText("abc").ToInt64()
	require.Error(t, err)

	_, err = NULL.ToInt64()
	require.Error(t, err)
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "NULL", NULL.String())
	assert.Equal(t, "INT64(42)", NewInt64(42).String())
	assert.Equal(t, "LIST(INT64(1), TEXT(a))", NewList(NewInt64(1), NewText("a")).String())
}
