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

// Package partition implements the hash partitioning scheme shared by
// the query layer and the storage layer. A row's placement is fully
// determined by its hash code, a 16-bit ring position computed from the
// serialized hash-key column values. Hash code ranges are always
// expressed as [lower, upper) half-open intervals so adjacent ranges
// compose without overlap.
package partition

import (
	"github.com/cespare/xxhash/v2"
)

// MaxHashCode is the highest position on the hash ring. The ring is
// [0, MaxHashCode], inclusive on both ends.
const MaxHashCode uint16 = 0xFFFF

// HashCodeForToken maps a user-facing signed 64-bit token onto the
// ring. Only the top 16 bits carry placement information; the sign bit
// is flipped so that negative tokens sort below positive ones. The
// mapping is monotonic, which lets token comparisons be folded into
// hash code bounds directly.
func HashCodeForToken(token int64) uint16 {
	return uint16(uint64(token)>>48) ^ 0x8000
}

// TokenForHashCode returns the smallest token that maps to the given
// hash code. It is the inverse of HashCodeForToken on ring positions.
func TokenForHashCode(hashCode uint16) int64 {
	return int64((uint64(hashCode) ^ 0x8000) << 48)
}

// CompoundHash computes the ring position of a row from its serialized
// hash-key column values, in declared key order. This must agree with
// the partitioner used for row placement: a request routed with this
// hash code must land on the tablet that owns the row.
func CompoundHash(keys ...[]byte) uint16 {
	h := xxhash.New()
	for _, key := range keys {
		// Write never returns an error.
		h.Write(key)
	}
	return uint16(h.Sum64() & uint64(MaxHashCode))
}
