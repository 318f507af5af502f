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

// Package evalengine folds bound expressions into concrete qltypes
// values. The expressions it receives are produced by the parser after
// binding: all bind variables have been collected and any remaining
// column reference is an error at evaluation time, not a deferred
// lookup. Evaluation is side-effect free and deterministic.
package evalengine

import (
	"corvusdb.io/corvus/go/qltypes"
)

// Expr is the interface that all evaluating expressions must implement.
type Expr interface {
	eval(env *ExpressionEnv) (qltypes.Value, error)
}
