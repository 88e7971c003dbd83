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
	"sort"

	"github.com/nixrt/nixrt/internal/rt/adt"
	"github.com/nixrt/nixrt/internal/rt/ops"
	"github.com/nixrt/nixrt/internal/rt/value"
	"github.com/nixrt/nixrt/rt/errors"
)

func registerLists(t Table) {
	t["length"] = unary(func(v value.Value) (value.Value, error) {
		l, err := value.ForceList(v)
		if err != nil {
			return nil, err
		}
		return value.NewInt(int64(len(l))), nil
	})

	t["head"] = unary(func(v value.Value) (value.Value, error) {
		l, err := value.ForceList(v)
		if err != nil {
			return nil, err
		}
		if len(l) == 0 {
			return nil, errors.NewRangeError("head of empty list")
		}
		return l[0], nil
	})

	t["tail"] = unary(func(v value.Value) (value.Value, error) {
		l, err := value.ForceList(v)
		if err != nil {
			return nil, err
		}
		if len(l) == 0 {
			return value.List{}, nil
		}
		return l[1:], nil
	})

	t["elem"] = binary(func(x, xs value.Value) (value.Value, error) {
		l, err := value.ForceList(xs)
		if err != nil {
			return nil, err
		}
		for _, e := range l {
			eq, err := ops.Equal(x, e)
			if err != nil {
				return nil, err
			}
			if bool(eq.(value.Bool)) {
				return value.Bool(true), nil
			}
		}
		return value.Bool(false), nil
	})

	t["elemAt"] = binary(func(xs, n value.Value) (value.Value, error) {
		l, err := value.ForceList(xs)
		if err != nil {
			return nil, err
		}
		idx, err := intIndex(n)
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(l) {
			return nil, errors.NewRangeError("list index %d out of bounds (length %d)", idx, len(l))
		}
		return l[idx], nil
	})

	t["concatLists"] = unary(func(v value.Value) (value.Value, error) {
		ls, err := value.ForceList(v)
		if err != nil {
			return nil, err
		}
		var out value.List
		for _, e := range ls {
			inner, err := value.ForceList(e)
			if err != nil {
				return nil, err
			}
			out = append(out, inner...)
		}
		if out == nil {
			out = value.List{}
		}
		return out, nil
	})

	t["map"] = binary(func(f, xs value.Value) (value.Value, error) {
		fn, err := value.ForceLambda(f)
		if err != nil {
			return nil, err
		}
		l, err := value.ForceList(xs)
		if err != nil {
			return nil, err
		}
		out := make(value.List, len(l))
		for i, e := range l {
			e := e
			out[i] = adt.Lazy(func() (value.Value, error) { return fn.Apply(e) })
		}
		return out, nil
	})

	t["filter"] = binary(func(f, xs value.Value) (value.Value, error) {
		fn, err := value.ForceLambda(f)
		if err != nil {
			return nil, err
		}
		l, err := value.ForceList(xs)
		if err != nil {
			return nil, err
		}
		var out value.List
		for _, e := range l {
			keep, err := applyPredicate(fn, e)
			if err != nil {
				return nil, err
			}
			if keep {
				out = append(out, e)
			}
		}
		if out == nil {
			out = value.List{}
		}
		return out, nil
	})

	t["concatMap"] = binary(func(f, xs value.Value) (value.Value, error) {
		fn, err := value.ForceLambda(f)
		if err != nil {
			return nil, err
		}
		l, err := value.ForceList(xs)
		if err != nil {
			return nil, err
		}
		var out value.List
		for _, e := range l {
			r, err := fn.Apply(e)
			if err != nil {
				return nil, err
			}
			rl, err := value.ForceList(r)
			if err != nil {
				return nil, err
			}
			out = append(out, rl...)
		}
		if out == nil {
			out = value.List{}
		}
		return out, nil
	})

	t["genList"] = binary(func(f, n value.Value) (value.Value, error) {
		fn, err := value.ForceLambda(f)
		if err != nil {
			return nil, err
		}
		count, err := intIndex(n)
		if err != nil {
			return nil, err
		}
		if count < 0 {
			return nil, errors.NewRangeError("genList: negative length %d", count)
		}
		out := make(value.List, count)
		for i := 0; i < count; i++ {
			i := i
			out[i] = adt.Lazy(func() (value.Value, error) { return fn.Apply(value.NewInt(int64(i))) })
		}
		return out, nil
	})

	t["foldl'"] = ternary(func(op, nul, xs value.Value) (value.Value, error) {
		fn, err := value.ForceLambda(op)
		if err != nil {
			return nil, err
		}
		l, err := value.ForceList(xs)
		if err != nil {
			return nil, err
		}
		acc, err := value.Force(nul)
		if err != nil {
			return nil, err
		}
		for _, e := range l {
			step, err := fn.Apply(acc)
			if err != nil {
				return nil, err
			}
			stepFn, err := value.ForceLambda(step)
			if err != nil {
				return nil, err
			}
			r, err := stepFn.Apply(e)
			if err != nil {
				return nil, err
			}
			acc, err = value.Force(r)
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	})

	t["partition"] = binary(func(pred, xs value.Value) (value.Value, error) {
		fn, err := value.ForceLambda(pred)
		if err != nil {
			return nil, err
		}
		l, err := value.ForceList(xs)
		if err != nil {
			return nil, err
		}
		right := value.List{}
		wrong := value.List{}
		for _, e := range l {
			keep, err := applyPredicate(fn, e)
			if err != nil {
				return nil, err
			}
			if keep {
				right = append(right, e)
			} else {
				wrong = append(wrong, e)
			}
		}
		return value.AttrSet{"right": right, "wrong": wrong}, nil
	})

	t["sort"] = binary(func(cmp, xs value.Value) (value.Value, error) {
		fn, err := value.ForceLambda(cmp)
		if err != nil {
			return nil, err
		}
		l, err := value.ForceList(xs)
		if err != nil {
			return nil, err
		}
		out := make(value.List, len(l))
		copy(out, l)
		var sortErr error
		sort.SliceStable(out, func(i, j int) bool {
			if sortErr != nil {
				return false
			}
			less, err := applyPredicate2(fn, out[i], out[j])
			if err != nil {
				sortErr = err
				return false
			}
			return less
		})
		if sortErr != nil {
			return nil, sortErr
		}
		return out, nil
	})

	t["groupBy"] = binary(func(f, xs value.Value) (value.Value, error) {
		fn, err := value.ForceLambda(f)
		if err != nil {
			return nil, err
		}
		l, err := value.ForceList(xs)
		if err != nil {
			return nil, err
		}
		out := value.AttrSet{}
		for _, e := range l {
			r, err := fn.Apply(e)
			if err != nil {
				return nil, err
			}
			key, err := value.ForceString(r)
			if err != nil {
				return nil, err
			}
			if existing, ok := out[key.Text]; ok {
				out[key.Text] = append(existing.(value.List), e)
			} else {
				out[key.Text] = value.List{e}
			}
		}
		return out, nil
	})

	t["all"] = binary(func(pred, xs value.Value) (value.Value, error) {
		fn, err := value.ForceLambda(pred)
		if err != nil {
			return nil, err
		}
		l, err := value.ForceList(xs)
		if err != nil {
			return nil, err
		}
		for _, e := range l {
			ok, err := applyPredicate(fn, e)
			if err != nil {
				return nil, err
			}
			if !ok {
				return value.Bool(false), nil
			}
		}
		return value.Bool(true), nil
	})

	t["any"] = binary(func(pred, xs value.Value) (value.Value, error) {
		fn, err := value.ForceLambda(pred)
		if err != nil {
			return nil, err
		}
		l, err := value.ForceList(xs)
		if err != nil {
			return nil, err
		}
		for _, e := range l {
			ok, err := applyPredicate(fn, e)
			if err != nil {
				return nil, err
			}
			if ok {
				return value.Bool(true), nil
			}
		}
		return value.Bool(false), nil
	})
}

func intIndex(v value.Value) (int, error) {
	fv, err := value.ForceNumber(v)
	if err != nil {
		return 0, err
	}
	i, ok := fv.(value.Int)
	if !ok {
		return 0, errors.NewTypeError("expected int, got float")
	}
	return int(i.V.Int64()), nil
}

func applyPredicate(fn *value.Lambda, arg value.Value) (bool, error) {
	r, err := fn.Apply(arg)
	if err != nil {
		return false, err
	}
	b, err := value.ForceBool(r)
	if err != nil {
		return false, err
	}
	return bool(b), nil
}

func applyPredicate2(fn *value.Lambda, a, b value.Value) (bool, error) {
	r, err := fn.Apply(a)
	if err != nil {
		return false, err
	}
	rf, err := value.ForceLambda(r)
	if err != nil {
		return false, err
	}
	r2, err := rf.Apply(b)
	if err != nil {
		return false, err
	}
	bv, err := value.ForceBool(r2)
	if err != nil {
		return false, err
	}
	return bool(bv), nil
}
