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

package value

import (
	"github.com/nixrt/nixrt/rt/errors"
)

// ForceString forces v and asserts it is a String, as needed at every
// string-typed builtin/operator boundary (C3).
func ForceString(v Value) (String, error) {
	fv, err := Force(v)
	if err != nil {
		return String{}, err
	}
	s, ok := fv.(String)
	if !ok {
		return String{}, errors.NewTypeError("expected string, got %s", kindOfConcrete(fv))
	}
	return s, nil
}

// ForceNumber forces v and asserts it is Int or Float.
func ForceNumber(v Value) (Value, error) {
	fv, err := Force(v)
	if err != nil {
		return nil, err
	}
	switch fv.(type) {
	case Int, Float:
		return fv, nil
	default:
		return nil, errors.NewTypeError("expected number, got %s", kindOfConcrete(fv))
	}
}

// ForceList forces v and asserts it is a List.
func ForceList(v Value) (List, error) {
	fv, err := Force(v)
	if err != nil {
		return nil, err
	}
	l, ok := fv.(List)
	if !ok {
		return nil, errors.NewTypeError("expected list, got %s", kindOfConcrete(fv))
	}
	return l, nil
}

// ForceAttrs forces v and asserts it is an AttrSet.
func ForceAttrs(v Value) (AttrSet, error) {
	fv, err := Force(v)
	if err != nil {
		return nil, err
	}
	a, ok := fv.(AttrSet)
	if !ok {
		return nil, errors.NewTypeError("expected set, got %s", kindOfConcrete(fv))
	}
	return a, nil
}

// ForceBool forces v and asserts it is a Bool.
func ForceBool(v Value) (Bool, error) {
	fv, err := Force(v)
	if err != nil {
		return false, err
	}
	b, ok := fv.(Bool)
	if !ok {
		return false, errors.NewTypeError("expected bool, got %s", kindOfConcrete(fv))
	}
	return b, nil
}

// ForceLambda forces v and asserts it is a Lambda.
func ForceLambda(v Value) (*Lambda, error) {
	fv, err := Force(v)
	if err != nil {
		return nil, err
	}
	l, ok := fv.(*Lambda)
	if !ok {
		return nil, errors.NewTypeError("expected lambda, got %s", kindOfConcrete(fv))
	}
	return l, nil
}

func isKind(v Value, want Kind) (bool, error) {
	k, err := KindOf(v)
	if err != nil {
		return false, err
	}
	return k == want, nil
}

func IsAttrs(v Value) (bool, error)    { return isKind(v, AttrsKind) }
func IsBool(v Value) (bool, error)     { return isKind(v, BoolKind) }
func IsFloat(v Value) (bool, error)    { return isKind(v, FloatKind) }
func IsFunction(v Value) (bool, error) { return isKind(v, LambdaKind) }
func IsInt(v Value) (bool, error)      { return isKind(v, IntKind) }
func IsList(v Value) (bool, error)     { return isKind(v, ListKind) }
func IsNull(v Value) (bool, error)     { return isKind(v, NullKind) }
func IsString(v Value) (bool, error)   { return isKind(v, StringKind) }
func IsPath(v Value) (bool, error)     { return isKind(v, PathKind) }
