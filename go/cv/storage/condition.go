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

package storage

// Condition is a node of the residual condition tree. It is a closed
// variant: either an AndCondition over children or a Comparison leaf,
// so consumers can match exhaustively when lowering to their own
// representation.
type Condition interface {
	condition()
}

// AndCondition is the conjunction of its sub-conditions. The compiler
// only ever produces a single AND at the root; the interface still
// admits nesting because the storage evaluator does.
type AndCondition struct {
	SubConditions []Condition
}

// Comparison is a leaf condition: left op right.
type Comparison struct {
	Op    Operator
	Left  *Expression
	Right *Expression
}

func (*AndCondition) condition() {}
func (*Comparison) condition()   {}
