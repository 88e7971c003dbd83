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

package ops

import (
	"math/big"

	"github.com/nixrt/nixrt/internal/rt/value"
	"github.com/nixrt/nixrt/rt/errors"
)

// typed forces a and b, verifies they share a class, and that the
// shared class is `want`. It implements the two general failure
// modes of spec.md §4.4: cross-type mismatch vs. wrong-type-for-this-
// operator.
func typed(a, b value.Value, want string) (value.Value, value.Value, error) {
	fa, err := value.Force(a)
	if err != nil {
		return nil, nil, err
	}
	fb, err := value.Force(b)
	if err != nil {
		return nil, nil, err
	}
	ca, cb := class(fa), class(fb)
	if ca != cb {
		return nil, nil, errors.NewTypeError("given types mismatch (%s != %s)", ca, cb)
	}
	if ca != want {
		return nil, nil, errors.NewTypeError("invalid input type (%s), expected (%s)", ca, want)
	}
	return fa, fb, nil
}

func toFloat(v value.Value) float64 {
	switch x := v.(type) {
	case value.Int:
		f := new(big.Float).SetInt(x.V)
		out, _ := f.Float64()
		return out
	case value.Float:
		return float64(x)
	}
	return 0
}

// Add implements `+`: number+number, string+string, or path+string
// (the string operand coerced and appended to the path).
func Add(a, b value.Value) (value.Value, error) {
	fa, err := value.Force(a)
	if err != nil {
		return nil, err
	}
	fb, err := value.Force(b)
	if err != nil {
		return nil, err
	}
	ca, cb := class(fa), class(fb)

	switch {
	case ca == "number" && cb == "number":
		ai, aok := fa.(value.Int)
		bi, bok := fb.(value.Int)
		if aok && bok {
			return value.Int{V: new(big.Int).Add(ai.V, bi.V)}, nil
		}
		return value.Float(toFloat(fa) + toFloat(fb)), nil

	case ca == "string" && cb == "string":
		sa, sb := fa.(value.String), fb.(value.String)
		return value.String{Text: sa.Text + sb.Text, Context: value.MergeContext(sa, sb)}, nil

	case ca == "path" && cb == "string":
		sb := fb.(value.String)
		return value.Path(string(fa.(value.Path)) + sb.Text), nil

	default:
		return nil, errors.NewTypeError("given types mismatch (%s != %s)", ca, cb)
	}
}

// Sub implements binary `-`.
func Sub(a, b value.Value) (value.Value, error) {
	fa, fb, err := typed(a, b, "number")
	if err != nil {
		return nil, err
	}
	ai, aok := fa.(value.Int)
	bi, bok := fb.(value.Int)
	if aok && bok {
		return value.Int{V: new(big.Int).Sub(ai.V, bi.V)}, nil
	}
	return value.Float(toFloat(fa) - toFloat(fb)), nil
}

// Mul implements `*`.
func Mul(a, b value.Value) (value.Value, error) {
	fa, fb, err := typed(a, b, "number")
	if err != nil {
		return nil, err
	}
	ai, aok := fa.(value.Int)
	bi, bok := fb.(value.Int)
	if aok && bok {
		return value.Int{V: new(big.Int).Mul(ai.V, bi.V)}, nil
	}
	return value.Float(toFloat(fa) * toFloat(fb)), nil
}

// Div implements `/`; a zero divisor is a RangeError regardless of
// whether the operands are integer or float.
func Div(a, b value.Value) (value.Value, error) {
	fa, fb, err := typed(a, b, "number")
	if err != nil {
		return nil, err
	}
	ai, aok := fa.(value.Int)
	bi, bok := fb.(value.Int)
	if aok && bok {
		if bi.V.Sign() == 0 {
			return nil, errors.NewRangeError("Division by zero")
		}
		q, r := new(big.Int).QuoRem(ai.V, bi.V, new(big.Int))
		if r.Sign() == 0 {
			return value.Int{V: q}, nil
		}
		return value.Float(toFloat(fa) / toFloat(fb)), nil
	}
	if toFloat(fb) == 0 {
		return nil, errors.NewRangeError("Division by zero")
	}
	return value.Float(toFloat(fa) / toFloat(fb)), nil
}

// Concat implements `++`: list concatenation.
func Concat(a, b value.Value) (value.Value, error) {
	fa, fb, err := typed(a, b, "list")
	if err != nil {
		return nil, err
	}
	la, lb := fa.(value.List), fb.(value.List)
	out := make(value.List, 0, len(la)+len(lb))
	out = append(out, la...)
	out = append(out, lb...)
	return out, nil
}

// Merge implements `//`: a shallow right-wins merge producing a new
// attr-set. Neither operand is mutated (merge purity, spec.md §8).
func Merge(a, b value.Value) (value.Value, error) {
	fa, fb, err := typed(a, b, "set")
	if err != nil {
		return nil, err
	}
	aa, ab := fa.(value.AttrSet), fb.(value.AttrSet)
	out := aa.Clone()
	for k, v := range ab {
		out[k] = v
	}
	return out, nil
}

// And implements `&&`, short-circuiting: b is only forced if a is true.
func And(a value.Value, b func() (value.Value, error)) (value.Value, error) {
	ba, err := value.ForceBool(a)
	if err != nil {
		return nil, err
	}
	if !ba {
		return value.Bool(false), nil
	}
	bv, err := b()
	if err != nil {
		return nil, err
	}
	bb, err := value.ForceBool(bv)
	if err != nil {
		return nil, err
	}
	return bb, nil
}

// Or implements `||`, short-circuiting: b is only forced if a is false.
func Or(a value.Value, b func() (value.Value, error)) (value.Value, error) {
	ba, err := value.ForceBool(a)
	if err != nil {
		return nil, err
	}
	if ba {
		return value.Bool(true), nil
	}
	bv, err := b()
	if err != nil {
		return nil, err
	}
	bb, err := value.ForceBool(bv)
	if err != nil {
		return nil, err
	}
	return bb, nil
}

// Implies implements `->` (logical implication), short-circuiting:
// b is only forced if a is true.
func Implies(a value.Value, b func() (value.Value, error)) (value.Value, error) {
	ba, err := value.ForceBool(a)
	if err != nil {
		return nil, err
	}
	if !ba {
		return value.Bool(true), nil
	}
	bv, err := b()
	if err != nil {
		return nil, err
	}
	bb, err := value.ForceBool(bv)
	if err != nil {
		return nil, err
	}
	return bb, nil
}

func numCompare(a, b value.Value) (int, error) {
	fa, fb, err := typed(a, b, "number")
	if err != nil {
		return 0, err
	}
	ai, aok := fa.(value.Int)
	bi, bok := fb.(value.Int)
	if aok && bok {
		return ai.V.Cmp(bi.V), nil
	}
	af, bf := toFloat(fa), toFloat(fb)
	switch {
	case af < bf:
		return -1, nil
	case af > bf:
		return 1, nil
	default:
		return 0, nil
	}
}

func Less(a, b value.Value) (value.Value, error) {
	c, err := numCompare(a, b)
	if err != nil {
		return nil, err
	}
	return value.Bool(c < 0), nil
}

func LessOrEqual(a, b value.Value) (value.Value, error) {
	c, err := numCompare(a, b)
	if err != nil {
		return nil, err
	}
	return value.Bool(c <= 0), nil
}

func Greater(a, b value.Value) (value.Value, error) {
	c, err := numCompare(a, b)
	if err != nil {
		return nil, err
	}
	return value.Bool(c > 0), nil
}

func GreaterOrEqual(a, b value.Value) (value.Value, error) {
	c, err := numCompare(a, b)
	if err != nil {
		return nil, err
	}
	return value.Bool(c >= 0), nil
}
