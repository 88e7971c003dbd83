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
	"github.com/nixrt/nixrt/internal/rt/value"
	"github.com/nixrt/nixrt/rt/errors"
)

// DeepMerge implements `_deepMerge(attrs, value, ...path)`: it
// ensures attrs.p1.p2...pn = value, creating prototype-free
// intermediate attr-sets on demand. attrs is mutated in place (this
// auxiliary backs `rec { a.b.c = 1; }`-style transpiled assignment,
// where the target is freshly constructed and not yet shared).
func DeepMerge(attrs value.AttrSet, val value.Value, path ...string) error {
	if len(path) == 0 {
		return errors.NewEvalError("_deepMerge: empty path")
	}
	cur := attrs
	for i, seg := range path[:len(path)-1] {
		next, ok := cur[seg]
		if !ok {
			fresh := value.AttrSet{}
			cur[seg] = fresh
			cur = fresh
			continue
		}
		fv, err := value.Force(next)
		if err != nil {
			return err
		}
		nested, ok := fv.(value.AttrSet)
		if !ok {
			return errors.NewEvalError(
				"_deepMerge: path component %q at index %d crosses a non-attrset value", seg, i)
		}
		cur = nested
	}
	cur[path[len(path)-1]] = val
	return nil
}

// LambdaArgCheck implements `_lambdaArgCheck(actual_attrs, key, fallback?)`:
// resolve a lambda's named argument, falling back to the given
// default thunk when the key is absent and a fallback was supplied.
func LambdaArgCheck(actual value.AttrSet, key string, fallback value.Value, hasFallback bool) (value.Value, error) {
	if v, ok := actual[key]; ok {
		return v, nil
	}
	if hasFallback {
		return value.Force(fallback)
	}
	return nil, errors.NewEvalError("attrset element %s missing at lambda call", key)
}
