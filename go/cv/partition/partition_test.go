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

package partition

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashCodeForToken(t *testing.T) {
	testcases := []struct {
		token int64
		want  uint16
	}{
		{math.MinInt64, 0},
		{-1, 0x7FFF},
		{0, 0x8000},
		{math.MaxInt64, MaxHashCode},
	}
	for _, tc := range testcases {
		assert.Equal(t, tc.want, HashCodeForToken(tc.token), "token %d", tc.token)
	}
}

func TestHashCodeForTokenIsMonotonic(t *testing.T) {
	tokens := []int64{math.MinInt64, -1 << 50, -1, 0, 1, 1 << 50, math.MaxInt64}
	require.True(t, sort.SliceIsSorted(tokens, func(i, j int) bool { return tokens[i] < tokens[j] }))

	for i := 1; i < len(tokens); i++ {
		prev, cur := HashCodeForToken(tokens[i-1]), HashCodeForToken(tokens[i])
		assert.LessOrEqual(t, prev, cur, "tokens %d and %d", tokens[i-1], tokens[i])
	}
}

func TestTokenForHashCodeRoundTrip(t *testing.T) {
	for _, hashCode := range []uint16{0, 1, 0x7FFF, 0x8000, MaxHashCode - 1, MaxHashCode} {
		token := TokenForHashCode(hashCode)
		assert.Equal(t, hashCode, HashCodeForToken(token), "hash code %d", hashCode)
	}
}

func TestCompoundHash(t *testing.T) {
	h := CompoundHash([]byte("3"), []byte("abc"))
	// Deterministic.
	assert.Equal(t, h, CompoundHash([]byte("3"), []byte("abc")))
	// Sensitive to key order.
	assert.NotEqual(t, h, CompoundHash([]byte("abc"), []byte("3")))
}
