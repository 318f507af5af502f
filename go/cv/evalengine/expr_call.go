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
	"corvusdb.io/corvus/go/cv/cverrors"
	"corvusdb.io/corvus/go/cv/proto/cvrpc"
	"corvusdb.io/corvus/go/qltypes"
)

// CallExpr is a function call. Builtin functions evaluate at the
// storage node against row contents, so a call is never folded here;
// it only exists to be lowered structurally into the wire condition.
type CallExpr struct {
	Func string
	Args []Expr
}

var _ Expr = (*CallExpr)(nil)

// eval implements the Expr interface.
func (c *CallExpr) eval(*ExpressionEnv) (qltypes.Value, error) {
	return qltypes.NULL, cverrors.Errorf(cvrpc.Code_UNIMPLEMENTED, "function %s() cannot be evaluated at compile time", c.Func)
}
