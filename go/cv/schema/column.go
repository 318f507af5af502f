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

// Package schema holds the catalog metadata the query layer compiles
// against. Descriptors are owned by the catalog and treated as
// immutable by everything downstream.
package schema

import "corvusdb.io/corvus/go/qltypes"

// ColumnID identifies a column within its table.
type ColumnID int32

// KeyRole says how a column participates in the table's primary key.
type KeyRole int8

const (
	// Regular columns are not part of the primary key.
	Regular KeyRole = iota
	// HashKey columns determine the row's partition hash code.
	HashKey
	// RangeKey columns order rows within a partition.
	RangeKey
)

func (r KeyRole) String() string {
	switch r {
	case HashKey:
		return "hash"
	case RangeKey:
		return "range"
	default:
		return "regular"
	}
}

// ColumnDescriptor is the catalog's description of one column. The
// query layer holds non-owning references for the duration of a single
// compilation.
type ColumnDescriptor struct {
	ID   ColumnID
	Name string
	Role KeyRole
	Type qltypes.Type
}

// IsHashKey returns true if the column is part of the hash key.
func (cd *ColumnDescriptor) IsHashKey() bool {
	return cd.Role == HashKey
}

// IsPrimaryKey returns true if the column is part of the primary key,
// either as a hash key or a range key.
func (cd *ColumnDescriptor) IsPrimaryKey() bool {
	return cd.Role != Regular
}

// Table describes a table: its columns in declared order.
type Table struct {
	Name    string
	Columns []*ColumnDescriptor
}

// HashKeyColumns returns the hash key columns in declared order.
func (t *Table) HashKeyColumns() []*ColumnDescriptor {
	var cols []*ColumnDescriptor
	for _, col := range t.Columns {
		if col.Role == HashKey {
			cols = append(cols, col)
		}
	}
	return cols
}

// RangeKeyColumns returns the range key columns in declared order.
func (t *Table) RangeKeyColumns() []*ColumnDescriptor {
	var cols []*ColumnDescriptor
	for _, col := range t.Columns {
		if col.Role == RangeKey {
			cols = append(cols, col)
		}
	}
	return cols
}
