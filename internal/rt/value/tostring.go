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
	"strconv"
	"strings"

	"github.com/nixrt/nixrt/rt/errors"
)

// ToString implements builtins.toString / nix_to_string (C3): strings
// pass through, numbers stringify, booleans map to "1"/"", lists join
// their elements with a space, attr-sets defer to __toString or
// outPath, and null maps to "".
func ToString(v Value) (string, error) {
	fv, err := Force(v)
	if err != nil {
		return "", err
	}
	switch x := fv.(type) {
	case Null:
		return "", nil
	case Bool:
		if x {
			return "1", nil
		}
		return "", nil
	case Int:
		return x.V.String(), nil
	case Float:
		return strconv.FormatFloat(float64(x), 'g', -1, 64), nil
	case String:
		return x.Text, nil
	case Path:
		return string(x), nil
	case List:
		parts := make([]string, len(x))
		for i, e := range x {
			s, err := ToString(e)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return strings.Join(parts, " "), nil
	case AttrSet:
		return attrSetToString(x)
	default:
		return "", errors.NewTypeError("cannot coerce %s to a string", kindOfConcrete(fv))
	}
}

func attrSetToString(a AttrSet) (string, error) {
	if fn, ok := a["__toString"]; ok {
		l, err := ForceLambda(fn)
		if err != nil {
			return "", err
		}
		res, err := l.Apply(a)
		if err != nil {
			return "", err
		}
		return ForceToString(res)
	}
	if out, ok := a["outPath"]; ok {
		return ForceToString(out)
	}
	return "", errors.NewTypeError("cannot coerce a set without __toString or outPath to a string")
}

// ForceToString forces v then runs ToString; most call sites want
// both steps together.
func ForceToString(v Value) (string, error) {
	fv, err := Force(v)
	if err != nil {
		return "", err
	}
	return ToString(fv)
}
