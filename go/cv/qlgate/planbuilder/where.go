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
	"corvusdb.io/corvus/go/cv/log"
	"corvusdb.io/corvus/go/cv/partition"
	"corvusdb.io/corvus/go/cv/proto/cvrpc"
	"corvusdb.io/corvus/go/cv/schema"
	"corvusdb.io/corvus/go/cv/storage"
	"corvusdb.io/corvus/go/qltypes"
)

// ErrUnsupportedWriteFilter is returned when a write statement carries
// a filtering condition. A write must identify its row by primary key;
// it cannot scan.
var ErrUnsupportedWriteFilter = cverrors.New(cvrpc.Code_UNIMPLEMENTED, "writes do not support filtering by non primary key columns")

// CompileRead builds the read request for a classified WHERE clause.
//
// A true noResults means the clause provably matches no rows; no
// request is produced and the caller must skip storage dispatch and
// return an empty result set. This determination is conservative:
// every other predicate combination ships to storage even if it is
// statically unlikely to match.
func CompileRead(table *schema.Table, cls *ClassifiedOps, env *evalengine.ExpressionEnv) (req *storage.ReadRequest, noResults bool, err error) {
	if env == nil {
		env = evalengine.EmptyExpressionEnv()
	}
	rb := &readBuilder{table: table, env: env}

	// Fold the partition token conditions into the [lower, upper)
	// hash code bounds first: they can prove the result empty without
	// looking at any column predicate.
	for _, op := range cls.PartitionKeyOps {
		noResults, err := rb.foldPartitionKeyOp(op)
		if err != nil {
			return nil, false, err
		}
		if noResults {
			return nil, true, nil
		}
	}

	hashOps := make([]*ColumnOp, 0, len(cls.KeyOps))
	rangeOps := make([]*ColumnOp, 0, len(cls.KeyOps))
	for _, op := range cls.KeyOps {
		if op.Desc.IsHashKey() {
			hashOps = append(hashOps, op)
		} else {
			rangeOps = append(rangeOps, op)
		}
	}

	lifted, noResults, err := rb.liftHashKeyOps(hashOps)
	if err != nil {
		return nil, false, err
	}
	if noResults {
		return nil, true, nil
	}

	// Everything that could not be lifted becomes part of the residual
	// condition, AND-combined. Hash key ops fall back as a group:
	// a partial structured hash key is not a valid wire representation.
	if !lifted {
		if err := rb.addColumnConditions(hashOps); err != nil {
			return nil, false, err
		}
	}
	if err := rb.addColumnConditions(rangeOps); err != nil {
		return nil, false, err
	}
	if err := rb.addColumnConditions(cls.FilterOps); err != nil {
		return nil, false, err
	}
	for _, op := range cls.SubscriptOps {
		cond, err := subscriptedColumnOpCondition(env, op)
		if err != nil {
			return nil, false, err
		}
		rb.conds = append(rb.conds, cond)
	}
	for _, op := range cls.FuncOps {
		cond, err := funcOpCondition(env, op)
		if err != nil {
			return nil, false, err
		}
		rb.conds = append(rb.conds, cond)
	}

	return rb.build(), false, nil
}

// readBuilder accumulates the pieces of a read request and assembles
// them once at the end, so a half-built request is never observable.
type readBuilder struct {
	table *schema.Table
	env   *evalengine.ExpressionEnv

	lower *uint16
	upper *uint16

	hashedKeys []*storage.Expression
	conds      []storage.Condition
}

func (rb *readBuilder) build() *storage.ReadRequest {
	req := &storage.ReadRequest{
		Table:           rb.table.Name,
		HashedKeyValues: rb.hashedKeys,
		HashCode:        rb.lower,
		MaxHashCode:     rb.upper,
	}
	// A fully lifted key with no residual predicates needs no condition
	// tree at all: the storage node returns the addressed rows as-is.
	if len(rb.conds) > 0 {
		req.Where = &storage.AndCondition{SubConditions: rb.conds}
	}
	return req
}

// foldPartitionKeyOp intersects one token condition into the running
// hash code bounds. Bounds are [start, end) intervals: start-inclusive,
// end-exclusive. The returned noResults is true when the condition
// leaves a provably empty interval.
func (rb *readBuilder) foldPartitionKeyOp(op *PartitionKeyOp) (bool, error) {
	val, err := rb.env.Evaluate(op.Expr)
	if err != nil {
		return false, err
	}
	token, err := val.ToInt64()
	if err != nil {
		return false, cverrors.Errorf(cvrpc.Code_INVALID_ARGUMENT, "partition token must be an integer: %v", err)
	}
	hashCode := partition.HashCodeForToken(token)

	switch op.Op {
	case storage.GreaterThan:
		if hashCode == partition.MaxHashCode {
			// Nothing hashes above the top of the ring.
			return true, nil
		}
		rb.setLowerBound(hashCode + 1)
	case storage.GreaterEqual:
		rb.setLowerBound(hashCode)
	case storage.LessThan:
		rb.setUpperBound(hashCode)
	case storage.LessEqual:
		if hashCode != partition.MaxHashCode {
			rb.setUpperBound(hashCode + 1)
		} // An upper bound at the top of the ring is no restriction.
	case storage.Equal:
		rb.setLowerBound(hashCode)
		if hashCode != partition.MaxHashCode {
			rb.setUpperBound(hashCode + 1)
		}
	default:
		return false, cverrors.Bugf("unsupported operator %v for token-based partition key condition", op.Op)
	}
	return false, nil
}

func (rb *readBuilder) setLowerBound(hashCode uint16) {
	if rb.lower == nil || *rb.lower < hashCode {
		rb.lower = &hashCode
	}
}

func (rb *readBuilder) setUpperBound(hashCode uint16) {
	if rb.upper == nil || *rb.upper > hashCode {
		rb.upper = &hashCode
	}
}

// liftHashKeyOps tries to turn the hash key ops into the structured
// hashed key values of the request. Lifting is all-or-nothing: it needs
// exactly one single-valued op per hash key column, and the lifted
// values follow the declared column order, not the order the conditions
// were written in. Multi-valued IN conditions and repeated conditions
// on one column make the whole group fall back to residual filtering;
// an empty IN list proves the result empty and short-circuits the
// compilation.
func (rb *readBuilder) liftHashKeyOps(hashOps []*ColumnOp) (lifted bool, noResults bool, err error) {
	slots := make(map[schema.ColumnID]*storage.Expression, len(hashOps))
	lifted = true
	for _, op := range hashOps {
		if !op.Desc.IsHashKey() {
			return false, false, cverrors.Bugf("unexpected non partition column %s in this context", op.Desc.Name)
		}
		lowered, err := lowerExpr(rb.env, op.Expr)
		if err != nil {
			return false, false, err
		}
		log.V(3).Infof("read request, column id = %d", op.Desc.ID)
		if op.Op == storage.In {
			elems, err := inElements(op, lowered)
			if err != nil {
				return false, false, err
			}
			switch len(elems) {
			case 0:
				// Empty IN condition guarantees no results.
				return false, true, nil
			case 1:
				// IN with one element is treated as equality.
				lowered = storage.NewValueExpression(elems[0])
			default:
				lifted = false
				continue
			}
		}
		if _, dup := slots[op.Desc.ID]; dup {
			// Two conditions on one column cannot form a structured key.
			lifted = false
			continue
		}
		slots[op.Desc.ID] = lowered
	}

	hashCols := rb.table.HashKeyColumns()
	if !lifted || len(slots) != len(hashCols) {
		return false, false, nil
	}
	for _, col := range hashCols {
		rb.hashedKeys = append(rb.hashedKeys, slots[col.ID])
	}
	return true, false, nil
}

func (rb *readBuilder) addColumnConditions(ops []*ColumnOp) error {
	for _, op := range ops {
		cond, err := columnOpCondition(rb.env, op)
		if err != nil {
			return err
		}
		rb.conds = append(rb.conds, cond)
	}
	return nil
}

// inElements returns the folded element values of an IN operand.
func inElements(op *ColumnOp, operand *storage.Expression) ([]qltypes.Value, error) {
	if operand.Value == nil || !operand.Value.IsList() {
		return nil, cverrors.Bugf("IN condition on column %s did not fold to a list", op.Desc.Name)
	}
	return operand.Value.List(), nil
}

// CompileWrite builds the write request for a classified WHERE clause.
// A write must fully identify its row: every primary key column carries
// an equality condition and nothing else filters. Subscripted column
// ops become targeted collection-element writes, not filters.
func CompileWrite(table *schema.Table, cls *ClassifiedOps, env *evalengine.ExpressionEnv) (*storage.WriteRequest, error) {
	if env == nil {
		env = evalengine.EmptyExpressionEnv()
	}
	// The grammar cannot bind token or function call conditions to a
	// write statement.
	if len(cls.PartitionKeyOps) > 0 {
		return nil, cverrors.Bugf("partition key condition in a write statement")
	}
	if len(cls.FuncOps) > 0 {
		return nil, cverrors.Bugf("function call condition in a write statement")
	}
	if len(cls.FilterOps) > 0 {
		return nil, cverrors.Wrapf(ErrUnsupportedWriteFilter, "column %s", cls.FilterOps[0].Desc.Name)
	}

	keyVals := make(map[schema.ColumnID]*storage.Expression, len(cls.KeyOps))
	for _, op := range cls.KeyOps {
		if op.Op != storage.Equal {
			return nil, cverrors.Wrapf(ErrUnsupportedWriteFilter, "%v condition on key column %s", op.Op, op.Desc.Name)
		}
		if !op.Desc.IsPrimaryKey() {
			return nil, cverrors.Bugf("unexpected non primary key column %s in this context", op.Desc.Name)
		}
		if _, dup := keyVals[op.Desc.ID]; dup {
			return nil, cverrors.Errorf(cvrpc.Code_INVALID_ARGUMENT, "duplicate condition on primary key column %s", op.Desc.Name)
		}
		lowered, err := lowerExpr(env, op.Expr)
		if err != nil {
			return nil, err
		}
		keyVals[op.Desc.ID] = lowered
	}

	// Key values follow the declared column order regardless of how
	// the statement spelled its conditions. The routing hash depends
	// on that order.
	hashCols, rangeCols := table.HashKeyColumns(), table.RangeKeyColumns()
	if len(keyVals) != len(hashCols)+len(rangeCols) {
		return nil, cverrors.Errorf(cvrpc.Code_INVALID_ARGUMENT, "write to table %s must fully specify the primary key", table.Name)
	}
	var hashedKeys, rangeKeys []*storage.Expression
	for _, col := range hashCols {
		hashedKeys = append(hashedKeys, keyVals[col.ID])
	}
	for _, col := range rangeCols {
		rangeKeys = append(rangeKeys, keyVals[col.ID])
	}

	var columnValues []*storage.ColumnValue
	for _, op := range cls.SubscriptOps {
		args := make([]*storage.Expression, 0, len(op.SubscriptArgs))
		for _, arg := range op.SubscriptArgs {
			lowered, err := lowerExpr(env, arg)
			if err != nil {
				return nil, err
			}
			args = append(args, lowered)
		}
		value, err := lowerExpr(env, op.Expr)
		if err != nil {
			return nil, err
		}
		columnValues = append(columnValues, &storage.ColumnValue{
			Column:        op.Desc.ID,
			SubscriptArgs: args,
			Value:         value,
		})
	}

	hashCode := routingHash(hashedKeys)
	return &storage.WriteRequest{
		Table:           table.Name,
		HashCode:        &hashCode,
		HashedKeyValues: hashedKeys,
		RangeKeyValues:  rangeKeys,
		ColumnValues:    columnValues,
	}, nil
}

// routingHash computes the partition hash code of a fully specified
// hash key, matching row placement.
func routingHash(hashedKeys []*storage.Expression) uint16 {
	raws := make([][]byte, 0, len(hashedKeys))
	for _, key := range hashedKeys {
		raws = append(raws, key.Value.Raw())
	}
	return partition.CompoundHash(raws...)
}
