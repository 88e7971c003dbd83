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

// Package builtins is the non-IO portion of builtins.* (C5), split
// file-per-group the way cuelang.org/go/pkg/list, pkg/strings and
// pkg/math split their domains. Each file registers its functions
// into the Table assembled in table.go.
package builtins

import "github.com/nixrt/nixrt/internal/rt/value"

// Table is the name -> callable mapping handed to transpiled code as
// the builtins_table half of spec.md §6's "operators + builtins
// table". Multi-argument builtins are curried, matching the
// transpiler's add(a)(b) convention (spec.md §9).
type Table map[string]value.Value

func unary(fn func(value.Value) (value.Value, error)) *value.Lambda {
	return &value.Lambda{Call: fn}
}

func binary(fn func(a, b value.Value) (value.Value, error)) *value.Lambda {
	return &value.Lambda{Call: func(a value.Value) (value.Value, error) {
		return &value.Lambda{Call: func(b value.Value) (value.Value, error) {
			return fn(a, b)
		}}, nil
	}}
}

func ternary(fn func(a, b, c value.Value) (value.Value, error)) *value.Lambda {
	return &value.Lambda{Call: func(a value.Value) (value.Value, error) {
		return &value.Lambda{Call: func(b value.Value) (value.Value, error) {
			return &value.Lambda{Call: func(c value.Value) (value.Value, error) {
				return fn(a, b, c)
			}}, nil
		}}, nil
	}}
}
