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
	"fmt"
	"strconv"
	"strings"
)

// Value is an internal data structure that represents a single typed QL
// value. Scalar values keep their canonical byte representation in val.
// List values keep their elements in list instead; a List never nests
// inside another List.
type Value struct {
	typ  Type
	val  []byte
	list []Value
}

// NULL represents the Null value.
var NULL = Value{}

// NewInt64 builds an Int64 Value.
func NewInt64(v int64) Value {
	return MakeTrusted(Int64, strconv.AppendInt(nil, v, 10))
}

// NewInt32 builds an Int32 Value.
func NewInt32(v int32) Value {
	return MakeTrusted(Int32, strconv.AppendInt(nil, int64(v), 10))
}

// NewFloat64 builds a Float64 Value.
func NewFloat64(v float64) Value {
	return MakeTrusted(Float64, strconv.AppendFloat(nil, v, 'g', -1, 64))
}

// NewBoolean builds a Boolean Value.
func NewBoolean(v bool) Value {
	return MakeTrusted(Boolean, strconv.AppendBool(nil, v))
}

// NewText builds a Text Value.
func NewText(v string) Value {
	return MakeTrusted(Text, []byte(v))
}

// NewBlob builds a Blob Value.
func NewBlob(v []byte) Value {
	return MakeTrusted(Blob, v)
}

// NewList builds a List Value out of the given elements.
func NewList(elems ...Value) Value {
	return Value{typ: List, list: elems}
}

// MakeTrusted makes a new Value based on the type and representation.
// The representation is not checked against the type; this function
// should only be used if the encoding is known to be correct.
func MakeTrusted(typ Type, val []byte) Value {
	if typ == Null {
		return NULL
	}
	return Value{typ: typ, val: val}
}

// Type returns the type of the Value.
func (v Value) Type() Type {
	return v.typ
}

// Raw returns the internal representation of the value. For a List this
// is nil; use List instead.
func (v Value) Raw() []byte {
	return v.val
}

// List returns the elements of a List value, or nil for scalars.
func (v Value) List() []Value {
	return v.list
}

// IsNull returns true if the Value is Null.
func (v Value) IsNull() bool {
	return v.typ == Null
}

// IsIntegral returns true if the Value is an integer.
func (v Value) IsIntegral() bool {
	return IsIntegral(v.typ)
}

// IsList returns true if the Value is a List.
func (v Value) IsList() bool {
	return v.typ == List
}

// ToInt64 converts the Value to an int64. It fails on non-integral
// values.
func (v Value) ToInt64() (int64, error) {
	if !v.IsIntegral() {
		return 0, fmt.Errorf("cannot convert %v to an integer", v)
	}
	return strconv.ParseInt(string(v.val), 10, 64)
}

// String returns a printable version of the value, for logs and test
// failures only.
func (v Value) String() string {
	if v.typ == Null {
		return "NULL"
	}
	if v.typ == List {
		elems := make([]string, 0, len(v.list))
		for _, e := range v.list {
			elems = append(elems, e.String())
		}
		return fmt.Sprintf("LIST(%s)", strings.Join(elems, ", "))
	}
	return fmt.Sprintf("%v(%s)", v.typ, v.val)
}
