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

import "github.com/nixrt/nixrt/internal/rt/value"

func registerParse(t Table) {
	t["parseDrvName"] = unary(func(v value.Value) (value.Value, error) {
		s, err := value.ForceString(v)
		if err != nil {
			return nil, err
		}
		name, version := splitDrvName(s.Text)
		return value.AttrSet{
			"name":    value.NewString(name),
			"version": value.NewString(version),
		}, nil
	})
}

// splitDrvName divides a derivation name of the form "pkg-1.2.3" at
// the first hyphen immediately followed by a digit, matching the
// reference parseDrvName: everything before that hyphen is the
// package name, everything after it the version.
func splitDrvName(s string) (name, version string) {
	for i := 0; i < len(s)-1; i++ {
		if s[i] == '-' && isDigitByte(s[i+1]) {
			return s[:i], s[i+1:]
		}
	}
	return s, ""
}
