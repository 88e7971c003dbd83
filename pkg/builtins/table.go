// Copyright 2020 CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package builtins

import (
	"github.com/nixrt/nixrt/internal/rt/ops"
	"github.com/nixrt/nixrt/internal/rt/value"
)

// NewTable assembles the full name -> callable mapping transpiled
// code is linked against: the named builtins.* groups plus the
// symbolic infix-operator group (spec.md §6's "operators + builtins
// table"). Operators are keyed by their surface symbol rather than a
// spelled-out name, since the transpiler emits a direct table lookup
// at each infix-expression site instead of going through `builtins`.
func NewTable() Table {
	t := Table{}

	registerPredicates(t)
	registerStrings(t)
	registerLists(t)
	registerAttrsets(t)
	registerVersion(t)
	registerControl(t)
	registerArith(t)
	registerJSON(t)
	registerEnv(t)
	registerParse(t)
	registerAux(t)

	t["+"] = binary(ops.Add)
	t["-"] = binary(ops.Sub)
	t["*"] = binary(ops.Mul)
	t["/"] = binary(ops.Div)
	t["++"] = binary(ops.Concat)
	t["//"] = binary(ops.Merge)
	t["=="] = binary(ops.Equal)
	t["!="] = binary(ops.NotEqual)
	t["<"] = binary(ops.Less)
	t["<="] = binary(ops.LessOrEqual)
	t[">"] = binary(ops.Greater)
	t[">="] = binary(ops.GreaterOrEqual)
	t["!"] = unary(ops.Not)
	t["neg"] = unary(ops.Neg)

	t["&&"] = binary(func(a, b value.Value) (value.Value, error) {
		return ops.And(a, func() (value.Value, error) { return value.Force(b) })
	})
	t["||"] = binary(func(a, b value.Value) (value.Value, error) {
		return ops.Or(a, func() (value.Value, error) { return value.Force(b) })
	})
	t["->"] = binary(func(a, b value.Value) (value.Value, error) {
		return ops.Implies(a, func() (value.Value, error) { return value.Force(b) })
	})

	return t
}
