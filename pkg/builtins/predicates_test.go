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
	"testing"

	"github.com/nixrt/nixrt/internal/rt/value"
)

func TestPredicates(t *testing.T) {
	tbl := Table{}
	registerPredicates(tbl)

	cases := []struct {
		name string
		v    value.Value
		want bool
	}{
		{"isInt", value.NewInt(1), true},
		{"isInt", value.NewString("x"), false},
		{"isString", value.NewString("x"), true},
		{"isBool", value.Bool(true), true},
		{"isList", value.List{}, true},
		{"isAttrs", value.AttrSet{}, true},
		{"isFunction", unary(func(v value.Value) (value.Value, error) { return v, nil }), true},
		{"isNull", value.NullValue, true},
	}
	for _, c := range cases {
		got := apply1(t, tbl[c.name], c.v)
		if bool(got.(value.Bool)) != c.want {
			t.Errorf("%s(%v) = %v, want %v", c.name, c.v, got, c.want)
		}
	}
}

func TestTypeOf(t *testing.T) {
	tbl := Table{}
	registerPredicates(tbl)

	got := apply1(t, tbl["typeOf"], value.NewInt(1))
	if got.(value.String).Text != "int" {
		t.Fatalf("typeOf(1) = %q, want %q", got.(value.String).Text, "int")
	}
}
