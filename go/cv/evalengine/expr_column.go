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
	"corvusdb.io/corvus/go/cv/schema"
	"corvusdb.io/corvus/go/qltypes"
)

// Column references a table column: by catalog id for lowering into
// wire expressions, by offset for evaluation against a row. During
// WHERE-clause compilation the row is empty, so evaluating a column
// means the expression was not fully bound.
type Column struct {
	ID     schema.ColumnID
	Offset int
}

var _ Expr = (*Column)(nil)

// eval implements the Expr interface.
func (c *Column) eval(env *ExpressionEnv) (qltypes.Value, error) {
	if c.Offset >= len(env.Row) {
		return qltypes.NULL, cverrors.Errorf(cvrpc.Code_INVALID_ARGUMENT, "unresolved reference to column %d", c.ID)
	}
	return env.Row[c.Offset], nil
}

// NewColumn returns a column reference expression.
func NewColumn(id schema.ColumnID, offset int) Expr {
	return &Column{ID: id, Offset: offset}
}
