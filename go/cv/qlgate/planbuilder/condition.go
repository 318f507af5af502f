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
	"corvusdb.io/corvus/go/cv/evalengine"
	"corvusdb.io/corvus/go/cv/storage"
)

// This file lowers single predicates into condition-tree leaves. The
// only structural composition, the AND over all residual predicates,
// happens in the request builder.

func columnOpCondition(env *evalengine.ExpressionEnv, op *ColumnOp) (*storage.Comparison, error) {
	right, err := lowerExpr(env, op.Expr)
	if err != nil {
		return nil, err
	}
	return &storage.Comparison{
		Op:    op.Op,
		Left:  storage.NewColumnExpression(op.Desc.ID),
		Right: right,
	}, nil
}

func subscriptedColumnOpCondition(env *evalengine.ExpressionEnv, op *SubscriptedColumnOp) (*storage.Comparison, error) {
	args := make([]*storage.Expression, 0, len(op.SubscriptArgs))
	for _, arg := range op.SubscriptArgs {
		lowered, err := lowerExpr(env, arg)
		if err != nil {
			return nil, err
		}
		args = append(args, lowered)
	}
	right, err := lowerExpr(env, op.Expr)
	if err != nil {
		return nil, err
	}
	return &storage.Comparison{
		Op: op.Op,
		Left: &storage.Expression{Subscripted: &storage.SubscriptedColumn{
			Column:        op.Desc.ID,
			SubscriptArgs: args,
		}},
		Right: right,
	}, nil
}

func funcOpCondition(env *evalengine.ExpressionEnv, op *FuncOp) (*storage.Comparison, error) {
	left, err := lowerExpr(env, op.Func)
	if err != nil {
		return nil, err
	}
	right, err := lowerExpr(env, op.Expr)
	if err != nil {
		return nil, err
	}
	return &storage.Comparison{
		Op:    op.Op,
		Left:  left,
		Right: right,
	}, nil
}
