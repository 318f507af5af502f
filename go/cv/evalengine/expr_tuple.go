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

// TupleExpr is a multi-valued expression, as found on the right-hand
// side of an IN condition. It evaluates to a List value.
type TupleExpr []Expr

var _ Expr = (TupleExpr)(nil)

// eval implements the Expr interface.
func (t TupleExpr) eval(env *ExpressionEnv) (qltypes.Value, error) {
	elems := make([]qltypes.Value, 0, len(t))
	for _, expr := range t {
		v, err := expr.eval(env)
		if err != nil {
			return qltypes.NULL, err
		}
		elems = append(elems, v)
	}
	return qltypes.NewList(elems...), nil
}
