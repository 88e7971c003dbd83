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
	"github.com/nixrt/nixrt/internal/rt/adt"
	"github.com/nixrt/nixrt/internal/rt/value"
	"github.com/nixrt/nixrt/rt/errors"
)

func registerAttrsets(t Table) {
	t["attrNames"] = unary(func(v value.Value) (value.Value, error) {
		a, err := value.ForceAttrs(v)
		if err != nil {
			return nil, err
		}
		keys := a.SortedKeys()
		out := make(value.List, len(keys))
		for i, k := range keys {
			out[i] = value.NewString(k)
		}
		return out, nil
	})

	t["attrValues"] = unary(func(v value.Value) (value.Value, error) {
		a, err := value.ForceAttrs(v)
		if err != nil {
			return nil, err
		}
		keys := a.SortedKeys()
		out := make(value.List, len(keys))
		for i, k := range keys {
			out[i] = a[k]
		}
		return out, nil
	})

	t["hasAttr"] = binary(func(s, aset value.Value) (value.Value, error) {
		name, err := value.ForceString(s)
		if err != nil {
			return nil, err
		}
		a, err := value.ForceAttrs(aset)
		if err != nil {
			return nil, err
		}
		_, ok := a[name.Text]
		return value.Bool(ok), nil
	})

	t["getAttr"] = binary(func(s, aset value.Value) (value.Value, error) {
		name, err := value.ForceString(s)
		if err != nil {
			return nil, err
		}
		a, err := value.ForceAttrs(aset)
		if err != nil {
			return nil, err
		}
		v, ok := a[name.Text]
		if !ok {
			return nil, errors.NewAttrMissingError(name.Text)
		}
		return v, nil
	})

	t["intersectAttrs"] = binary(func(e1, e2 value.Value) (value.Value, error) {
		a1, err := value.ForceAttrs(e1)
		if err != nil {
			return nil, err
		}
		a2, err := value.ForceAttrs(e2)
		if err != nil {
			return nil, err
		}
		out := value.AttrSet{}
		for k, v := range a2 {
			if _, ok := a1[k]; ok {
				out[k] = v
			}
		}
		return out, nil
	})

	t["listToAttrs"] = unary(func(v value.Value) (value.Value, error) {
		l, err := value.ForceList(v)
		if err != nil {
			return nil, err
		}
		out := value.AttrSet{}
		for _, e := range l {
			pair, err := value.ForceAttrs(e)
			if err != nil {
				return nil, err
			}
			nameV, ok := pair["name"]
			if !ok {
				return nil, errors.NewAttrMissingError("name")
			}
			name, err := value.ForceString(nameV)
			if err != nil {
				return nil, err
			}
			val, ok := pair["value"]
			if !ok {
				return nil, errors.NewAttrMissingError("value")
			}
			if _, exists := out[name.Text]; !exists {
				out[name.Text] = val
			}
		}
		return out, nil
	})

	t["mapAttrs"] = binary(func(f, aset value.Value) (value.Value, error) {
		fn, err := value.ForceLambda(f)
		if err != nil {
			return nil, err
		}
		a, err := value.ForceAttrs(aset)
		if err != nil {
			return nil, err
		}
		out := value.AttrSet{}
		for k, v := range a {
			k, v := k, v
			out[k] = adt.Lazy(func() (value.Value, error) {
				step, err := fn.Apply(value.NewString(k))
				if err != nil {
					return nil, err
				}
				stepFn, err := value.ForceLambda(step)
				if err != nil {
					return nil, err
				}
				return stepFn.Apply(v)
			})
		}
		return out, nil
	})

	t["removeAttrs"] = binary(func(aset, names value.Value) (value.Value, error) {
		a, err := value.ForceAttrs(aset)
		if err != nil {
			return nil, err
		}
		l, err := value.ForceList(names)
		if err != nil {
			return nil, err
		}
		out := a.Clone()
		for _, n := range l {
			s, err := value.ForceString(n)
			if err != nil {
				return nil, err
			}
			delete(out, s.Text)
		}
		return out, nil
	})

	t["catAttrs"] = binary(func(s, list value.Value) (value.Value, error) {
		name, err := value.ForceString(s)
		if err != nil {
			return nil, err
		}
		l, err := value.ForceList(list)
		if err != nil {
			return nil, err
		}
		var out value.List
		for _, e := range l {
			a, err := value.ForceAttrs(e)
			if err != nil {
				return nil, err
			}
			if v, ok := a[name.Text]; ok {
				out = append(out, v)
			}
		}
		if out == nil {
			out = value.List{}
		}
		return out, nil
	})
}
