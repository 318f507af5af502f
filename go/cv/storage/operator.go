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

// Package storage defines the wire representation of the requests the
// query layer sends to the storage nodes: structured key values, hash
// code bounds, and the residual condition tree for predicates that
// could not be lifted into key slots. The structures here are built
// once per query and handed to the transport layer; nothing in this
// package reaches the network itself.
package storage

// Operator is a comparison or logical operator, shared between parsed
// predicates and wire condition nodes.
type Operator int8

// Operator values.
const (
	Equal Operator = iota
	NotEqual
	LessThan
	LessEqual
	GreaterThan
	GreaterEqual
	In
	NotIn
	And
)

var operatorNames = map[Operator]string{
	Equal:        "=",
	NotEqual:     "!=",
	LessThan:     "<",
	LessEqual:    "<=",
	GreaterThan:  ">",
	GreaterEqual: ">=",
	In:           "IN",
	NotIn:        "NOT IN",
	And:          "AND",
}

func (op Operator) String() string {
	if name, ok := operatorNames[op]; ok {
		return name
	}
	return "UNKNOWN"
}

// MarshalJSON serializes the Operator as a JSON string. It's used for
// diagnostics.
func (op Operator) MarshalJSON() ([]byte, error) {
	return []byte(`"` + op.String() + `"`), nil
}
