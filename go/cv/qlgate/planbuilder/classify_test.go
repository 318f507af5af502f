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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corvusdb.io/corvus/go/cv/evalengine"
	"corvusdb.io/corvus/go/cv/storage"
)

func TestClassify(t *testing.T) {
	hashEq := eq(colH, 1)
	hashIn := in(colH, 1, 2)
	hashLt := &ColumnOp{Desc: colH, Op: storage.LessThan, Expr: evalengine.NewLiteralInt(5)}
	rangeEq := eq(colR, 2)
	rangeGt := &ColumnOp{Desc: colR, Op: storage.GreaterThan, Expr: evalengine.NewLiteralInt(5)}
	plain := eq(colC, 3)
	subOp := &SubscriptedColumnOp{
		Desc:          colM,
		SubscriptArgs: []evalengine.Expr{evalengine.NewLiteralString("k")},
		Op:            storage.Equal,
		Expr:          evalengine.NewLiteralInt(9),
	}
	funcOp := &FuncOp{
		Func: &evalengine.CallExpr{Func: "ttl", Args: []evalengine.Expr{evalengine.NewColumn(colC.ID, 2)}},
		Op:   storage.GreaterThan,
		Expr: evalengine.NewLiteralInt(100),
	}
	tokOp := tokenOp(storage.GreaterEqual, 10)

	cls := Classify([]Predicate{hashEq, hashIn, hashLt, rangeEq, rangeGt, plain, subOp, funcOp, tokOp})

	// Every predicate lands in exactly one partition, in input order.
	require.Equal(t, []*ColumnOp{hashEq, hashIn, rangeEq}, cls.KeyOps)
	require.Equal(t, []*ColumnOp{hashLt, rangeGt, plain}, cls.FilterOps)
	require.Equal(t, []*SubscriptedColumnOp{subOp}, cls.SubscriptOps)
	require.Equal(t, []*FuncOp{funcOp}, cls.FuncOps)
	require.Equal(t, []*PartitionKeyOp{tokOp}, cls.PartitionKeyOps)
}

func TestClassifyEmpty(t *testing.T) {
	cls := Classify(nil)
	assert.Empty(t, cls.KeyOps)
	assert.Empty(t, cls.FilterOps)
	assert.Empty(t, cls.SubscriptOps)
	assert.Empty(t, cls.FuncOps)
	assert.Empty(t, cls.PartitionKeyOps)
}
