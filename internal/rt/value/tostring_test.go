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

import "testing"

func TestToStringPrimitives(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{NullValue, ""},
		{Bool(true), "1"},
		{Bool(false), ""},
		{NewInt(42), "42"},
		{NewString("hi"), "hi"},
		{List{NewString("a"), NewString("b")}, "a b"},
	}
	for _, c := range cases {
		got, err := ToString(c.v)
		if err != nil {
			t.Fatalf("ToString(%#v): %v", c.v, err)
		}
		if got != c.want {
			t.Errorf("ToString(%#v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestToStringAttrSetOutPath(t *testing.T) {
	a := AttrSet{"outPath": NewString("/nix/store/foo")}
	got, err := ToString(a)
	if err != nil {
		t.Fatal(err)
	}
	if got != "/nix/store/foo" {
		t.Fatalf("got %q", got)
	}
}

func TestToStringAttrSetWithoutCoercion(t *testing.T) {
	a := AttrSet{"x": NewInt(1)}
	if _, err := ToString(a); err == nil {
		t.Fatal("expected TypeError: no __toString or outPath")
	}
}

func TestToStringCallsDunderToString(t *testing.T) {
	a := AttrSet{}
	a["__toString"] = &Lambda{Call: func(self Value) (Value, error) {
		return NewString("custom"), nil
	}}
	got, err := ToString(a)
	if err != nil {
		t.Fatal(err)
	}
	if got != "custom" {
		t.Fatalf("got %q, want custom", got)
	}
}
