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

// Literal is a constant expression.
type Literal struct {
	Val qltypes.Value
}

var _ Expr = (*Literal)(nil)

// eval implements the Expr interface.
func (l *Literal) eval(*ExpressionEnv) (qltypes.Value, error) {
	return l.Val, nil
}

// NewLiteralInt returns a literal expression for an integer.
func NewLiteralInt(i int64) Expr {
	return &Literal{Val: qltypes.NewInt64(i)}
}

// NewLiteralFloat returns a literal expression for a float.
func NewLiteralFloat(f float64) Expr {
	return &Literal{Val: qltypes.NewFloat64(f)}
}

// NewLiteralString returns a literal expression for a string.
func NewLiteralString(s string) Expr {
	return &Literal{Val: qltypes.NewText(s)}
}

// NewLiteralBool returns a literal expression for a boolean.
func NewLiteralBool(b bool) Expr {
	return &Literal{Val: qltypes.NewBoolean(b)}
}
