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
	"math"

	"github.com/nixrt/nixrt/internal/rt/ops"
	"github.com/nixrt/nixrt/internal/rt/value"
)

// registerArith exposes the builtins.* names for operators that are
// otherwise only reachable through the transpiler's infix form (the
// nixOp group of spec.md §6), plus the handful of numeric builtins
// (bitAnd, bitOr, bitXor, ceil, floor) that have no infix spelling at all.
func registerArith(t Table) {
	t["add"] = binary(ops.Add)
	t["sub"] = binary(ops.Sub)
	t["mul"] = binary(ops.Mul)
	t["div"] = binary(ops.Div)
	t["lessThan"] = binary(ops.Less)

	t["bitAnd"] = binary(func(a, b value.Value) (value.Value, error) {
		return intBinOp(a, b, func(x, y int64) int64 { return x & y })
	})
	t["bitOr"] = binary(func(a, b value.Value) (value.Value, error) {
		return intBinOp(a, b, func(x, y int64) int64 { return x | y })
	})
	t["bitXor"] = binary(func(a, b value.Value) (value.Value, error) {
		return intBinOp(a, b, func(x, y int64) int64 { return x ^ y })
	})

	t["ceil"] = unary(func(v value.Value) (value.Value, error) {
		return roundWith(v, math.Ceil)
	})
	t["floor"] = unary(func(v value.Value) (value.Value, error) {
		return roundWith(v, math.Floor)
	})
}

func intBinOp(a, b value.Value, fn func(x, y int64) int64) (value.Value, error) {
	na, err := value.ForceNumber(a)
	if err != nil {
		return nil, err
	}
	nb, err := value.ForceNumber(b)
	if err != nil {
		return nil, err
	}
	ia, err := asInt64(na)
	if err != nil {
		return nil, err
	}
	ib, err := asInt64(nb)
	if err != nil {
		return nil, err
	}
	return value.NewInt(fn(ia, ib)), nil
}

func asInt64(v value.Value) (int64, error) {
	i, err := intIndex(v)
	return int64(i), err
}

func roundWith(v value.Value, fn func(float64) float64) (value.Value, error) {
	n, err := value.ForceNumber(v)
	if err != nil {
		return nil, err
	}
	if i, ok := n.(value.Int); ok {
		return i, nil
	}
	f := n.(value.Float)
	return value.NewInt(int64(fn(float64(f)))), nil
}
