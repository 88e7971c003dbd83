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

func TestStringLength(t *testing.T) {
	tbl := Table{}
	registerStrings(tbl)
	got := apply1(t, tbl["stringLength"], value.NewString("hello"))
	if got.(value.Int).V.Int64() != 5 {
		t.Fatalf("stringLength = %v, want 5", got)
	}
}

func TestBaseNameOfAndDirOf(t *testing.T) {
	tbl := Table{}
	registerStrings(tbl)

	got := apply1(t, tbl["baseNameOf"], value.NewString("/a/b/c.txt"))
	if got.(value.String).Text != "c.txt" {
		t.Fatalf("baseNameOf = %q, want %q", got.(value.String).Text, "c.txt")
	}
	got = apply1(t, tbl["dirOf"], value.NewString("/a/b/c.txt"))
	if got.(value.String).Text != "/a/b" {
		t.Fatalf("dirOf = %q, want %q", got.(value.String).Text, "/a/b")
	}
	got = apply1(t, tbl["dirOf"], value.NewString("nopath"))
	if got.(value.String).Text != "" {
		t.Fatalf("dirOf with no slash = %q, want empty string", got.(value.String).Text)
	}
}

func TestConcatStringsSep(t *testing.T) {
	tbl := Table{}
	registerStrings(tbl)
	list := value.List{value.NewString("a"), value.NewString("b"), value.NewString("c")}
	got := apply2(t, tbl["concatStringsSep"], value.NewString(", "), list)
	if got.(value.String).Text != "a, b, c" {
		t.Fatalf("got %q", got.(value.String).Text)
	}
}

func TestReplaceStringsFirstMatchingFromWins(t *testing.T) {
	got := replaceStrings([]string{"a", "aa"}, []string{"X", "Y"}, "aaa")
	if got != "XXX" {
		t.Fatalf("replaceStrings = %q, want %q (earlier from-entries take priority per position)", got, "XXX")
	}
}

func TestReplaceStringsEmptyFromMatchesEveryPosition(t *testing.T) {
	got := replaceStrings([]string{""}, []string{"-"}, "ab")
	if got != "-a-b-" {
		t.Fatalf("replaceStrings with empty from = %q, want %q", got, "-a-b-")
	}
}
