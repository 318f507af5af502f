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

// Package qltypes implements the QL data types used by the query layer.
// Values are kept in a canonical textual representation so they can be
// compared, hashed and shipped to storage without knowing the column
// type up front.
package qltypes

// Type represents the type of a QL value.
type Type int32

// All the QL types supported by the query layer.
const (
	Null Type = iota
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
	Boolean
	Text
	Blob
	Timestamp
	// List is the type of a multi-valued operand, as produced by the
	// right-hand side of an IN condition. It never names a column type.
	List
)

var typeNames = map[Type]string{
	Null:      "NULL",
	Int8:      "INT8",
	Int16:     "INT16",
	Int32:     "INT32",
	Int64:     "INT64",
	Float32:   "FLOAT32",
	Float64:   "FLOAT64",
	Boolean:   "BOOLEAN",
	Text:      "TEXT",
	Blob:      "BLOB",
	Timestamp: "TIMESTAMP",
	List:      "LIST",
}

// String returns the type name, as used in Value.String output.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsIntegral returns true if t is an integer type.
func IsIntegral(t Type) bool {
	return t == Int8 || t == Int16 || t == Int32 || t == Int64
}

// IsFloat returns true if t is a floating point type.
func IsFloat(t Type) bool {
	return t == Float32 || t == Float64
}

// IsNumber returns true if t is a numeric type.
func IsNumber(t Type) bool {
	return IsIntegral(t) || IsFloat(t)
}

// IsQuoted returns true if t is a text or binary type.
func IsQuoted(t Type) bool {
	return t == Text || t == Blob
}
