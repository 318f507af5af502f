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

package evalengine

import (
	"corvusdb.io/corvus/go/qltypes"
)

// ExpressionEnv contains the environment that the expression
// evaluates in, such as the current row and bindvars.
type ExpressionEnv struct {
	BindVars map[string]qltypes.Value

	// Row is the current row, for expressions with column references.
	// It is empty during WHERE-clause compilation.
	Row []qltypes.Value
}

// Evaluate folds expr into a concrete value in this environment.
func (env *ExpressionEnv) Evaluate(expr Expr) (qltypes.Value, error) {
	if env == nil {
		panic("ExpressionEnv == nil")
	}
	return expr.eval(env)
}

// EmptyExpressionEnv returns a new ExpressionEnv with no bind vars or row.
func EmptyExpressionEnv() *ExpressionEnv {
	return EnvWithBindVars(map[string]qltypes.Value{})
}

// EnvWithBindVars returns an expression environment with no current row,
// but with bindvars.
func EnvWithBindVars(bindVars map[string]qltypes.Value) *ExpressionEnv {
	return &ExpressionEnv{BindVars: bindVars}
}
