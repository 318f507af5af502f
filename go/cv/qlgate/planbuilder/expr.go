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
	"corvusdb.io/corvus/go/cv/cverrors"
	"corvusdb.io/corvus/go/cv/evalengine"
	"corvusdb.io/corvus/go/cv/storage"
)

// lowerExpr turns a bound expression into a wire operand. Function
// calls are lowered structurally, everything else is folded to a
// concrete value through the evalengine. A bare column reference is
// not a value; the grammar only produces them inside function calls,
// where lowerCallExpr handles them.
func lowerExpr(env *evalengine.ExpressionEnv, expr evalengine.Expr) (*storage.Expression, error) {
	switch node := expr.(type) {
	case *evalengine.CallExpr:
		return lowerCallExpr(env, node)
	case *evalengine.Column:
		return nil, cverrors.Bugf("column %d referenced as a value in this context", node.ID)
	default:
		val, err := env.Evaluate(expr)
		if err != nil {
			return nil, err
		}
		return storage.NewValueExpression(val), nil
	}
}

// lowerCallExpr lowers a function call structurally. Its arguments may
// reference columns; those resolve at the storage node.
func lowerCallExpr(env *evalengine.ExpressionEnv, call *evalengine.CallExpr) (*storage.Expression, error) {
	args := make([]*storage.Expression, 0, len(call.Args))
	for _, arg := range call.Args {
		if col, ok := arg.(*evalengine.Column); ok {
			args = append(args, storage.NewColumnExpression(col.ID))
			continue
		}
		lowered, err := lowerExpr(env, arg)
		if err != nil {
			return nil, err
		}
		args = append(args, lowered)
	}
	return &storage.Expression{Call: &storage.FuncCall{Name: call.Func, Args: args}}, nil
}
