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
	"github.com/nixrt/nixrt/rt/errors"
)

// registerAux exposes the two transpiler-internal auxiliaries of C4:
// `_deepMerge` for `rec { a.b.c = 1; }`-style nested assignment, and
// `_lambdaArgCheck` for resolving a `{ a, b ? default }:` parameter.
// These are not user-facing Nix builtins (nothing in a .nix file ever
// calls them directly); the transpiler is bound to these exact table
// keys, per spec.md §6 and SPEC_FULL's C4 section.
func registerAux(t Table) {
	t["_deepMerge"] = ternary(func(attrs, val, path value.Value) (value.Value, error) {
		a, err := value.ForceAttrs(attrs)
		if err != nil {
			return nil, err
		}
		pathList, err := value.ForceList(path)
		if err != nil {
			return nil, err
		}
		segs := make([]string, len(pathList))
		for i, e := range pathList {
			s, err := value.ForceString(e)
			if err != nil {
				return nil, err
			}
			segs[i] = s.Text
		}
		if err := ops.DeepMerge(a, val, segs...); err != nil {
			return nil, err
		}
		return a, nil
	})

	// _lambdaArgCheck's third argument packages the optional default
	// the curried calling convention can't express as a bare value:
	// {hasFallback, fallback}. The transpiler emits
	// {hasFallback = false; fallback = null;} at call sites with no
	// `?` default.
	t["_lambdaArgCheck"] = ternary(func(actual, key, fallbackSpec value.Value) (value.Value, error) {
		a, err := value.ForceAttrs(actual)
		if err != nil {
			return nil, err
		}
		k, err := value.ForceString(key)
		if err != nil {
			return nil, err
		}
		spec, err := value.ForceAttrs(fallbackSpec)
		if err != nil {
			return nil, err
		}
		hasFallback, ok := spec["hasFallback"]
		if !ok {
			return nil, errors.NewEvalError("_lambdaArgCheck: fallback spec missing hasFallback")
		}
		hf, err := value.ForceBool(hasFallback)
		if err != nil {
			return nil, err
		}
		return ops.LambdaArgCheck(a, k.Text, spec["fallback"], bool(hf))
	})
}
