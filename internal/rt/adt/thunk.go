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

// Package adt is the lazy evaluation core (C1) and the lexical scope
// model (C2). Grounded on cuelang.org/go/internal/core/adt's
// Environment/Vertex chaining, generalised from CUE's eager
// unification graph to Nix's call-by-need thunk model.
package adt

import (
	"github.com/nixrt/nixrt/internal/rt/debug"
	"github.com/nixrt/nixrt/internal/rt/value"
	"github.com/nixrt/nixrt/rt/errors"
)

type thunkState uint8

const (
	stateUnforced thunkState = iota
	stateInProgress
	stateForced
)

// Thunk is a memoised suspended computation: the three observable
// states of spec.md §3 (unforced, in-progress, forced). The runtime
// is single-threaded cooperative (spec.md §5), so no locking is
// needed to detect re-entrance — state is simply a field inspected
// synchronously within the same call stack.
type Thunk struct {
	state    thunkState
	producer func() (value.Value, error)
	value    value.Value
}

func (*Thunk) isNixValue() {}

// Lazy wraps a nullary producer in a Thunk (C1's lazy(producer)). If
// producer is nil this is a programmer error in the caller (the
// transpiler never emits that), so it panics rather than silently
// misbehaving.
func Lazy(producer func() (value.Value, error)) value.Value {
	if producer == nil {
		panic("adt: Lazy called with nil producer")
	}
	return &Thunk{producer: producer}
}

// Ready wraps an already-known value as a pre-forced Thunk. Useful
// when transpiled code needs to hand a concrete value through an API
// that expects a Value and may want to format it via the Thunk
// debug string.
func Ready(v value.Value) value.Value {
	return &Thunk{state: stateForced, value: v}
}

// Force drives t to the forced state and returns the underlying
// value, implementing the five-step algorithm of spec.md §4.1.
func (t *Thunk) Force() (value.Value, error) {
	for {
		switch t.state {
		case stateForced:
			return t.value, nil
		case stateInProgress:
			return nil, errors.NewEvalError("infinite recursion encountered (self-referential evaluation)")
		}

		t.state = stateInProgress
		debug.Logf("force: entering thunk %p", t)
		v, err := t.producer()
		if err != nil {
			// Restore to unforced so a caller that recovers (tryEval,
			// or_default) may retry.
			t.state = stateUnforced
			return nil, err
		}

		if inner, ok := v.(*Thunk); ok {
			// Splice: adopt the inner thunk's state/producer/value and
			// loop, rather than nesting a Thunk inside t's own value.
			*t = *inner
			continue
		}
		if th, ok := v.(value.Thunker); ok {
			fv, ferr := th.Force()
			if ferr != nil {
				t.state = stateUnforced
				return nil, ferr
			}
			v = fv
		}

		t.value = v
		t.state = stateForced
		return v, nil
	}
}

func (t *Thunk) String() string {
	switch t.state {
	case stateForced:
		k, _ := value.KindOf(t.value)
		return "thunk(forced:" + k.String() + ")"
	case stateInProgress:
		return "thunk(in-progress)"
	default:
		return "thunk(unforced)"
	}
}
