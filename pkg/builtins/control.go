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
	"log"

	"github.com/nixrt/nixrt/internal/rt/value"
	"github.com/nixrt/nixrt/rt/errors"
)

func registerControl(t Table) {
	t["seq"] = binary(func(a, b value.Value) (value.Value, error) {
		if _, err := value.Force(a); err != nil {
			return nil, err
		}
		return b, nil
	})

	t["deepSeq"] = binary(func(a, b value.Value) (value.Value, error) {
		if err := deepForce(a); err != nil {
			return nil, err
		}
		return b, nil
	})

	t["tryEval"] = unary(func(v value.Value) (value.Value, error) {
		forced, err := value.Force(v)
		if err == nil {
			return value.AttrSet{
				"success": value.Bool(true),
				"value":   forced,
			}, nil
		}
		var evalErr *errors.NixEvalError
		if !errors.As(err, &evalErr) {
			return nil, err
		}
		return value.AttrSet{
			"success": value.Bool(false),
			"value":   value.Bool(false),
		}, nil
	})

	t["abort"] = unary(func(v value.Value) (value.Value, error) {
		s, err := value.ForceToString(v)
		if err != nil {
			return nil, err
		}
		return nil, errors.NewAbortError("evaluation aborted with the following error message: '%s'", s)
	})

	t["throw"] = unary(func(v value.Value) (value.Value, error) {
		s, err := value.ForceToString(v)
		if err != nil {
			return nil, err
		}
		return nil, errors.NewEvalError("%s", s)
	})

	t["assert"] = binary(func(cond, body value.Value) (value.Value, error) {
		b, err := value.ForceBool(cond)
		if err != nil {
			return nil, err
		}
		if !b {
			return nil, errors.NewEvalError("assertion failed")
		}
		return body, nil
	})

	t["trace"] = binary(func(msg, body value.Value) (value.Value, error) {
		s, err := value.ForceToString(msg)
		if err != nil {
			return nil, err
		}
		log.Printf("trace: %s", s)
		return body, nil
	})
}

// deepForce recursively forces v and, for containers, every element
// and attribute value reachable from it — the strict evaluation
// deepSeq and builtins.seq's list/attrset-walking cousins require.
func deepForce(v value.Value) error {
	fv, err := value.Force(v)
	if err != nil {
		return err
	}
	switch x := fv.(type) {
	case value.List:
		for _, e := range x {
			if err := deepForce(e); err != nil {
				return err
			}
		}
	case value.AttrSet:
		for _, e := range x {
			if err := deepForce(e); err != nil {
				return err
			}
		}
	}
	return nil
}
