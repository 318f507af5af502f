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

package planbuilder

import (
	"corvusdb.io/corvus/go/cv/storage"
)

// ClassifiedOps is the WHERE clause split by predicate shape. Every
// input predicate appears in exactly one of the fields, in input order.
type ClassifiedOps struct {
	// KeyOps are the key-addressing candidates: equality or IN on a
	// hash key column, equality on a range key column. Whether they can
	// actually be lifted into structured key slots is decided by the
	// request builders.
	KeyOps []*ColumnOp

	// FilterOps are all other column predicates.
	FilterOps []*ColumnOp

	SubscriptOps    []*SubscriptedColumnOp
	FuncOps         []*FuncOp
	PartitionKeyOps []*PartitionKeyOp
}

// Classify partitions the predicate list. This is a pure routing step:
// no expression is evaluated, the decision depends only on the shape of
// the predicate and the role of the column it names.
func Classify(preds []Predicate) *ClassifiedOps {
	cls := &ClassifiedOps{}
	for _, pred := range preds {
		switch op := pred.(type) {
		case *ColumnOp:
			if isKeyCandidate(op) {
				cls.KeyOps = append(cls.KeyOps, op)
			} else {
				cls.FilterOps = append(cls.FilterOps, op)
			}
		case *SubscriptedColumnOp:
			cls.SubscriptOps = append(cls.SubscriptOps, op)
		case *FuncOp:
			cls.FuncOps = append(cls.FuncOps, op)
		case *PartitionKeyOp:
			cls.PartitionKeyOps = append(cls.PartitionKeyOps, op)
		}
	}
	return cls
}

// isKeyCandidate returns true if the predicate has a shape that can be
// expressed as a structured key value. A non-equality condition on a
// key column is still just a filter.
func isKeyCandidate(op *ColumnOp) bool {
	if op.Desc.IsHashKey() {
		return op.Op == storage.Equal || op.Op == storage.In
	}
	if op.Desc.IsPrimaryKey() {
		return op.Op == storage.Equal
	}
	return false
}
