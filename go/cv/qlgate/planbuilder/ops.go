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

// Package planbuilder compiles the analyzed WHERE clause of a statement
// into a storage request. Predicates that address the primary key
// become structured key values on the request; everything else is
// lowered into a residual condition tree evaluated at the storage node.
// The compiler can also prove that a clause matches no rows at all, in
// which case callers skip storage dispatch entirely.
package planbuilder

import (
	"corvusdb.io/corvus/go/cv/evalengine"
	"corvusdb.io/corvus/go/cv/schema"
	"corvusdb.io/corvus/go/cv/storage"
)

// Predicate is one analyzed WHERE-clause term, as produced by the
// parser. The variants below are the only implementations.
type Predicate interface {
	predicate()
}

// ColumnOp is a simple column predicate: column op expr.
type ColumnOp struct {
	Desc *schema.ColumnDescriptor
	Op   storage.Operator
	Expr evalengine.Expr
}

// SubscriptedColumnOp is a predicate on an element of a
// collection-typed column: column[args...] op expr.
type SubscriptedColumnOp struct {
	Desc          *schema.ColumnDescriptor
	SubscriptArgs []evalengine.Expr
	Op            storage.Operator
	Expr          evalengine.Expr
}

// FuncOp is a predicate whose left-hand side is a function call:
// f(args...) op expr.
type FuncOp struct {
	Func *evalengine.CallExpr
	Op   storage.Operator
	Expr evalengine.Expr
}

// PartitionKeyOp is a predicate on the partition-token pseudo-column:
// token op expr. Only valid on reads.
type PartitionKeyOp struct {
	Op   storage.Operator
	Expr evalengine.Expr
}

func (*ColumnOp) predicate()            {}
func (*SubscriptedColumnOp) predicate() {}
func (*FuncOp) predicate()              {}
func (*PartitionKeyOp) predicate()      {}
