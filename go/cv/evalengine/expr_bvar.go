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

// BindVariable is a placeholder expression resolved against the
// session's bind variables at evaluation time.
type BindVariable struct {
	Key string
}

var _ Expr = (*BindVariable)(nil)

func (env *ExpressionEnv) lookupBindVar(key string) (qltypes.Value, error) {
	val, ok := env.BindVars[key]
	if !ok {
		return qltypes.NULL, cverrors.Errorf(cvrpc.Code_INVALID_ARGUMENT, "query arguments missing for %s", key)
	}
	return val, nil
}

// eval implements the Expr interface.
func (bv *BindVariable) eval(env *ExpressionEnv) (qltypes.Value, error) {
	return env.lookupBindVar(bv.Key)
}

// NewBindVar returns a bind variable expression for the given key.
func NewBindVar(key string) Expr {
	return &BindVariable{Key: key}
}
