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

package adt

import (
	"sort"

	"github.com/mpvl/unique"

	"github.com/nixrt/nixrt/internal/rt/value"
	"github.com/nixrt/nixrt/rt/errors"
)

// protoKey is the one reserved name writable scopes refuse to bind,
// guarding against prototype pollution (spec.md §4.2).
const protoKey = "__proto__"

// Scope is the read interface shared by both scope flavours: look up
// a name, or enumerate every name visible from here. Modeled on how
// internal/core/adt.Environment is walked generically by its
// consumers regardless of what produced each link in the chain.
type Scope interface {
	Lookup(name string) (value.Value, bool)
	AllKeys() []string
}

// WritableScope is a rec-scope: single-assignment, lexically parented.
// New bindings may be inserted but never overwritten or deleted.
type WritableScope struct {
	parent *WritableScope
	// fallback lets a writable scope also chain through a read-only
	// overlay (the `with e; let ... in ...` nesting case), tried after
	// parent on a miss.
	fallback Scope
	bindings map[string]value.Value
	order    []string
}

// MkScope creates a writable scope whose key-set starts empty.
func MkScope(parent *WritableScope) *WritableScope {
	return &WritableScope{parent: parent, bindings: map[string]value.Value{}}
}

// MkScopeChained is MkScope generalized to chain through an arbitrary
// Scope (typically an OverlayScope from an enclosing `with`) rather
// than only another WritableScope.
func MkScopeChained(fallback Scope) *WritableScope {
	return &WritableScope{fallback: fallback, bindings: map[string]value.Value{}}
}

// Bind installs a non-configurable, non-writable binding for name.
// Re-binding an already-bound name, or binding __proto__, fails with
// ScopeError; neither mutates the scope.
func (s *WritableScope) Bind(name string, v value.Value) error {
	if name == protoKey {
		return errors.NewScopeError("tried modifying prototype")
	}
	if _, ok := s.bindings[name]; ok {
		return errors.NewScopeError("cannot rebind %q: already bound in this scope", name)
	}
	s.bindings[name] = v
	s.order = append(s.order, name)
	return nil
}

// Lookup resolves name in s, falling through to parent (or the
// chained fallback Scope) on a miss.
func (s *WritableScope) Lookup(name string) (value.Value, bool) {
	if v, ok := s.bindings[name]; ok {
		return v, true
	}
	if s.parent != nil {
		return s.parent.Lookup(name)
	}
	if s.fallback != nil {
		return s.fallback.Lookup(name)
	}
	return nil, false
}

// AllKeys returns the sorted union of own and inherited keys.
func (s *WritableScope) AllKeys() []string {
	seen := map[string]struct{}{}
	var keys []string
	for _, k := range s.order {
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	var parentKeys []string
	if s.parent != nil {
		parentKeys = s.parent.AllKeys()
	} else if s.fallback != nil {
		parentKeys = s.fallback.AllKeys()
	}
	for _, k := range parentKeys {
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	return sortedCopy(keys)
}

// ExtractScope returns a detached plain mapping of own bindings only,
// with no prototype — the `inherit` / rec-extraction primitive.
func (s *WritableScope) ExtractScope() value.AttrSet {
	out := make(value.AttrSet, len(s.bindings))
	for k, v := range s.bindings {
		out[k] = v
	}
	return out
}

// OverlayScope is a with-scope: one or more attr-set layers tried in
// argument order. It is read-only; any mutation attempt is a
// ScopeError, enforced simply by OverlayScope having no Bind method.
type OverlayScope struct {
	layers []value.AttrSet
}

// MkScopeWith builds a read-only overlay over the given layers, first
// layer first.
func MkScopeWith(layers ...value.AttrSet) *OverlayScope {
	return &OverlayScope{layers: layers}
}

func (s *OverlayScope) Lookup(name string) (value.Value, bool) {
	for _, l := range s.layers {
		if v, ok := l[name]; ok {
			return v, true
		}
	}
	return nil, false
}

func (s *OverlayScope) AllKeys() []string {
	seen := map[string]struct{}{}
	var keys []string
	for _, l := range s.layers {
		for _, k := range l.SortedKeys() {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				keys = append(keys, k)
			}
		}
	}
	return keys
}

// Write, delete, or prototype redefinition attempts against a
// read-only scope are not reachable through the Scope interface at
// all (OverlayScope exposes no mutator); WriteAttempt exists only so
// transpiled code that speculatively tries a write against an
// interface value can report the correct ScopeError uniformly instead
// of a Go type assertion panic.
func WriteAttempt(s Scope) error {
	if _, ok := s.(*OverlayScope); ok {
		return errors.NewScopeError("cannot write to a read-only (with) scope")
	}
	return errors.NewScopeError("cannot write to scope")
}

func sortedCopy(keys []string) []string {
	out := make([]string, len(keys))
	copy(out, keys)
	n := unique.Sort(sort.StringSlice(out))
	return out[:n]
}
