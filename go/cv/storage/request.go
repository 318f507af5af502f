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

package storage

import (
	"encoding/json"

	"corvusdb.io/corvus/go/cv/schema"
)

// ReadRequest describes one read against a table.
//
// HashedKeyValues is either complete (one value per hash key column,
// in declared order) or empty: a partial hash key is not a valid wire
// representation, the storage node cannot address a partition with it.
//
// HashCode and MaxHashCode bound the hash codes of the partitions to
// scan as the half-open interval [HashCode, MaxHashCode). A nil bound
// is unrestricted on that side.
type ReadRequest struct {
	Table string `json:",omitempty"`

	HashedKeyValues []*Expression `json:",omitempty"`
	RangeKeyValues  []*Expression `json:",omitempty"`

	HashCode    *uint16 `json:",omitempty"`
	MaxHashCode *uint16 `json:",omitempty"`

	// Where is the residual condition evaluated row-by-row at the
	// storage node. nil means every row in the addressed range matches.
	Where Condition `json:",omitempty"`
}

// WriteRequest describes one write against a table. Writes always
// address a single row, so the key values are mandatory and there is
// no residual condition.
type WriteRequest struct {
	Table string `json:",omitempty"`

	// HashCode routes the request to the tablet owning the row. It is
	// computed from HashedKeyValues by the compiler.
	HashCode *uint16 `json:",omitempty"`

	HashedKeyValues []*Expression `json:",omitempty"`
	RangeKeyValues  []*Expression `json:",omitempty"`

	// ColumnValues carries targeted collection-element writes: the
	// column, the subscript path into it, and the value to store.
	ColumnValues []*ColumnValue `json:",omitempty"`
}

// ColumnValue is one "column value with subscript" entry of a write.
type ColumnValue struct {
	Column        schema.ColumnID
	SubscriptArgs []*Expression `json:",omitempty"`
	Value         *Expression   `json:",omitempty"`
}

// String marshals the request into a JSON representation. It's used
// for testing and diagnostics.
func (req *ReadRequest) String() string {
	out, _ := json.Marshal(req)
	return string(out)
}

// String marshals the request into a JSON representation. It's used
// for testing and diagnostics.
func (req *WriteRequest) String() string {
	out, _ := json.Marshal(req)
	return string(out)
}
