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

import "github.com/nixrt/nixrt/internal/rt/value"

func predicate(fn func(value.Value) (bool, error)) *value.Lambda {
	return unary(func(v value.Value) (value.Value, error) {
		b, err := fn(v)
		if err != nil {
			return nil, err
		}
		return value.Bool(b), nil
	})
}

func registerPredicates(t Table) {
	t["isAttrs"] = predicate(value.IsAttrs)
	t["isBool"] = predicate(value.IsBool)
	t["isFloat"] = predicate(value.IsFloat)
	t["isFunction"] = predicate(value.IsFunction)
	t["isInt"] = predicate(value.IsInt)
	t["isList"] = predicate(value.IsList)
	t["isNull"] = predicate(value.IsNull) // deprecated upstream, still present
	t["isString"] = predicate(value.IsString)
	t["isPath"] = predicate(value.IsPath)

	t["typeOf"] = unary(func(v value.Value) (value.Value, error) {
		s, err := value.TypeOf(v)
		if err != nil {
			return nil, err
		}
		return value.NewString(s), nil
	})
}
