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
	"corvusdb.io/corvus/go/cv/schema"
	"corvusdb.io/corvus/go/qltypes"
)

// Expression is one operand of a condition, or one structured key or
// column value. Exactly one of the fields is set:
//
//   - Value: a concrete value, fully folded at compile time.
//   - Column: a reference to a column of the row under evaluation.
//   - Subscripted: an element access into a collection-typed column.
//   - Call: a builtin function call evaluated at the storage node.
type Expression struct {
	Value       *qltypes.Value     `json:",omitempty"`
	Column      *schema.ColumnID   `json:",omitempty"`
	Subscripted *SubscriptedColumn `json:",omitempty"`
	Call        *FuncCall          `json:",omitempty"`
}

// NewValueExpression wraps a concrete value as an operand.
func NewValueExpression(v qltypes.Value) *Expression {
	return &Expression{Value: &v}
}

// NewColumnExpression wraps a column reference as an operand.
func NewColumnExpression(id schema.ColumnID) *Expression {
	return &Expression{Column: &id}
}

// SubscriptedColumn references an element of a collection-typed column.
// The subscript arguments are evaluated at the storage node against the
// row's column value.
type SubscriptedColumn struct {
	Column        schema.ColumnID
	SubscriptArgs []*Expression
}

// FuncCall is a builtin function call evaluated at the storage node.
type FuncCall struct {
	Name string
	Args []*Expression
}
