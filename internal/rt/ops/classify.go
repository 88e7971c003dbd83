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

// Package ops implements the binary/unary operators of C4, with the
// Nix type rules of spec.md §4.4, grounded on the operand-kind
// dispatch in cuelang.org/go/internal/core/adt/binop.go generalized
// from CUE's lattice of kinds to Nix's coarser operand classes.
package ops

import "github.com/nixrt/nixrt/internal/rt/value"

// class names the coarse operand category operator error messages
// report — "number" rather than "int"/"float", matching spec.md §8's
// example message "given types mismatch (number != string)".
func class(v value.Value) string {
	switch v.(type) {
	case value.Int, value.Float:
		return "number"
	case value.String:
		return "string"
	case value.Path:
		return "path"
	case value.Bool:
		return "bool"
	case value.List:
		return "list"
	case value.AttrSet:
		return "set"
	case value.Null:
		return "null"
	case *value.Lambda:
		return "lambda"
	default:
		return "unknown"
	}
}
