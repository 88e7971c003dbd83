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

// Package value defines the universe of Nix values (C3): the tagged
// union over host primitives and containers described in spec.md §3,
// plus the predicates and type coercions that consume them after
// forcing. Thunks live in internal/rt/adt and are wired in here only
// through the Thunker marker interface, so this package never needs
// to import the lazy core.
package value

import (
	"math/big"
	"sort"

	"github.com/mpvl/unique"
)

// Kind identifies the dynamic type of a forced Value, mirroring
// Nix's typeOf results.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	IntKind
	FloatKind
	StringKind
	PathKind
	ListKind
	AttrsKind
	LambdaKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "bool"
	case IntKind:
		return "int"
	case FloatKind:
		return "float"
	case StringKind:
		return "string"
	case PathKind:
		return "path"
	case ListKind:
		return "list"
	case AttrsKind:
		return "set"
	case LambdaKind:
		return "lambda"
	default:
		return "unknown"
	}
}

// Value is the universe of Nix values. It is a marker interface:
// Kind is deliberately NOT part of it, because asking the kind of an
// unforced Thunk requires the ability to fail (self-referential
// evaluation, a throwing producer) and a bare Kind() method cannot
// report that. Callers go through Force (or KindOf) instead.
type Value interface {
	isNixValue()
}

// Thunker is implemented by suspended computations (C1's Thunk). It
// lives here, rather than being referenced from the adt package, so
// that Value and the forcing machinery can stay in one package
// without an import cycle back to the lazy core.
type Thunker interface {
	Value
	Force() (Value, error)
}

// Force reduces v to weak head normal form: if v is a Thunker it is
// forced, and the result is forced again in case the producer's
// return value is itself a Thunker that was not spliced away by the
// inner implementation. Concrete values are returned unchanged.
func Force(v Value) (Value, error) {
	for {
		t, ok := v.(Thunker)
		if !ok {
			return v, nil
		}
		fv, err := t.Force()
		if err != nil {
			return nil, err
		}
		v = fv
	}
}

// KindOf forces v and reports its dynamic Kind.
func KindOf(v Value) (Kind, error) {
	fv, err := Force(v)
	if err != nil {
		return 0, err
	}
	return kindOfConcrete(fv), nil
}

func kindOfConcrete(v Value) Kind {
	switch v.(type) {
	case Null:
		return NullKind
	case Bool:
		return BoolKind
	case Int:
		return IntKind
	case Float:
		return FloatKind
	case String:
		return StringKind
	case Path:
		return PathKind
	case List:
		return ListKind
	case AttrSet:
		return AttrsKind
	case *Lambda:
		return LambdaKind
	default:
		return NullKind
	}
}

// TypeOf implements the builtins.typeOf surface form.
func TypeOf(v Value) (string, error) {
	k, err := KindOf(v)
	if err != nil {
		return "", err
	}
	return k.String(), nil
}

// Null is Nix's unit value.
type Null struct{}

func (Null) isNixValue() {}

// NullValue is the single Null instance; Null carries no state so any
// zero value works equally well.
var NullValue = Null{}

// Bool is a Nix boolean.
type Bool bool

func (Bool) isNixValue() {}

// Int is an arbitrary-precision Nix integer.
type Int struct {
	V *big.Int
}

func (Int) isNixValue() {}

func NewInt(i int64) Int { return Int{V: big.NewInt(i)} }

// Float is a Nix double.
type Float float64

func (Float) isNixValue() {}

// String is a Nix string together with its string context: an opaque
// set of dependency tokens. Only string + string carries it forward
// (see MergeContext); other string operations drop it.
type String struct {
	Text    string
	Context map[string]struct{}
}

func (String) isNixValue() {}

// NewString builds a context-free string, the common case.
func NewString(s string) String { return String{Text: s} }

// MergeContext returns the union of the string contexts of a and b,
// or nil when both are empty. The `+` operator uses it for
// string + string; concatStringsSep and toString build context-free
// results and do not call it.
func MergeContext(a, b String) map[string]struct{} {
	if len(a.Context) == 0 && len(b.Context) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(a.Context)+len(b.Context))
	for k := range a.Context {
		out[k] = struct{}{}
	}
	for k := range b.Context {
		out[k] = struct{}{}
	}
	return out
}

// Path is an absolute filesystem path, distinct from String.
type Path string

func (Path) isNixValue() {}

// List is an ordered sequence of (possibly still-thunked) values.
type List []Value

func (List) isNixValue() {}

// AttrSet is a finite string-keyed mapping. Keys are unordered
// internally; attrNames/attrValues/allKeys sort them on enumeration.
type AttrSet map[string]Value

func (AttrSet) isNixValue() {}

// SortedKeys returns the keys of a in ascending order.
func (a AttrSet) SortedKeys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sortStrings(keys)
	return keys
}

// Clone returns a shallow, independent copy of a (new map, same
// element values) — used wherever an operation must not mutate its
// operand (merge purity, removeAttrs).
func (a AttrSet) Clone() AttrSet {
	out := make(AttrSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// sortStrings sorts s in place. AttrSet keys are already unique by
// construction (it's a Go map), so unique.Sort's compaction is a
// no-op here; it's used anyway because it's the sorted-unique string
// primitive the teacher depends on, and attrNames/allKeys are exactly
// the "sorted unique string slice" operation it exists for.
func sortStrings(s []string) {
	n := unique.Sort(sort.StringSlice(s))
	if n != len(s) {
		panic("sortStrings: AttrSet produced duplicate keys")
	}
}

// ArgSpec describes one named parameter of an attr-set-pattern lambda
// (the `{ a, b ? default }:` form).
type ArgSpec struct {
	Name       string
	HasDefault bool
	Default    Value
}

// Lambda is a 1-argument closure. Multi-argument Nix functions are
// curried by the transpiler; Params is non-nil for attr-set-pattern
// lambdas and carries the argument metadata _lambdaArgCheck consults.
type Lambda struct {
	Name   string
	Params []ArgSpec
	Call   func(arg Value) (Value, error)
}

func (*Lambda) isNixValue() {}

func (l *Lambda) Apply(arg Value) (Value, error) {
	return l.Call(arg)
}
