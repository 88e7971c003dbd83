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

import "github.com/nixrt/nixrt/internal/rt/value"

// Equal implements `==`: deep structural equality on forced values,
// grounded on internal/core/adt/equality.go's recursive Equal/
// equalTerminal split, generalized from CUE's vertex graph to Nix's
// List/AttrSet containers.
func Equal(a, b value.Value) (value.Value, error) {
	eq, err := deepEqual(a, b)
	if err != nil {
		return nil, err
	}
	return value.Bool(eq), nil
}

// NotEqual implements `!=`.
func NotEqual(a, b value.Value) (value.Value, error) {
	eq, err := deepEqual(a, b)
	if err != nil {
		return nil, err
	}
	return value.Bool(!eq), nil
}

func deepEqual(a, b value.Value) (bool, error) {
	fa, err := value.Force(a)
	if err != nil {
		return false, err
	}
	fb, err := value.Force(b)
	if err != nil {
		return false, err
	}

	if class(fa) != class(fb) {
		return false, nil
	}

	switch x := fa.(type) {
	case value.Null:
		return true, nil
	case value.Bool:
		y := fb.(value.Bool)
		return x == y, nil
	case value.Int:
		switch y := fb.(type) {
		case value.Int:
			return x.V.Cmp(y.V) == 0, nil
		case value.Float:
			return toFloat(x) == toFloat(y), nil
		}
		return false, nil
	case value.Float:
		return toFloat(x) == toFloat(fb), nil
	case value.String:
		y := fb.(value.String)
		return x.Text == y.Text, nil
	case value.Path:
		y := fb.(value.Path)
		return x == y, nil
	case value.List:
		y := fb.(value.List)
		if len(x) != len(y) {
			return false, nil
		}
		for i := range x {
			eq, err := deepEqual(x[i], y[i])
			if err != nil {
				return false, err
			}
			if !eq {
				return false, nil
			}
		}
		return true, nil
	case value.AttrSet:
		y := fb.(value.AttrSet)
		if len(x) != len(y) {
			return false, nil
		}
		for k, xv := range x {
			yv, ok := y[k]
			if !ok {
				return false, nil
			}
			eq, err := deepEqual(xv, yv)
			if err != nil {
				return false, err
			}
			if !eq {
				return false, nil
			}
		}
		return true, nil
	case *value.Lambda:
		// Functions compare equal only to themselves, as in Nix.
		y := fb.(*value.Lambda)
		return x == y, nil
	default:
		return false, nil
	}
}
