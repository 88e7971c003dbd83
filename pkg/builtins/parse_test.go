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

func TestParseDrvName(t *testing.T) {
	cases := []struct {
		in, name, version string
	}{
		{"nix-1.11.4", "nix", "1.11.4"},
		{"hello-2.12", "hello", "2.12"},
		{"my-pkg-0.1", "my-pkg", "0.1"},
		{"noversion", "noversion", ""},
		{"has-dashes-but-no-digit-", "has-dashes-but-no-digit-", ""},
	}

	tbl := Table{}
	registerParse(tbl)
	for _, c := range cases {
		got := apply1(t, tbl["parseDrvName"], value.NewString(c.in)).(value.AttrSet)
		if got["name"].(value.String).Text != c.name {
			t.Errorf("parseDrvName(%q).name = %q, want %q", c.in, got["name"].(value.String).Text, c.name)
		}
		if got["version"].(value.String).Text != c.version {
			t.Errorf("parseDrvName(%q).version = %q, want %q", c.in, got["version"].(value.String).Text, c.version)
		}
	}
}
