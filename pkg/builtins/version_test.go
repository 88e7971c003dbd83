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

	"github.com/google/go-cmp/cmp"
)

func TestCompareVersions(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1.0", "2.0", -1},
		{"2.0", "1.0", 1},
		{"1.0pre2", "1.0pre3", -1},
		{"1.0-pre", "1.0", -1},
		{"1.0", "1.0", 0},
		{"1.2.3", "1.2.3", 0},
	}
	for _, c := range cases {
		got := compareVersionStrings(c.a, c.b)
		if sign(got) != sign(c.want) {
			t.Errorf("compareVersions(%q, %q) = %d, want sign %d", c.a, c.b, got, c.want)
		}
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func TestCompareVersionsDeterministic(t *testing.T) {
	a, b := "1.2.3-rc1", "1.2.3-rc2"
	first := compareVersionStrings(a, b)
	second := compareVersionStrings(a, b)
	if first != second {
		t.Fatalf("compareVersions is not deterministic: %d then %d", first, second)
	}
}

func TestSplitVersionTokenization(t *testing.T) {
	got := tokenize("3.10.2-pre1")
	want := []string{"3", "10", "2", "pre", "1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokenize() mismatch (-want +got):\n%s", diff)
	}
}
