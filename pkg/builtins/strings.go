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
	"strings"

	"github.com/nixrt/nixrt/internal/rt/value"
)

func registerStrings(t Table) {
	t["stringLength"] = unary(func(v value.Value) (value.Value, error) {
		s, err := value.ForceString(v)
		if err != nil {
			return nil, err
		}
		return value.NewInt(int64(len(s.Text))), nil
	})

	t["baseNameOf"] = unary(func(v value.Value) (value.Value, error) {
		s, err := value.ForceString(v)
		if err != nil {
			return nil, err
		}
		if i := strings.LastIndexByte(s.Text, '/'); i >= 0 {
			return value.NewString(s.Text[i+1:]), nil
		}
		return value.NewString(s.Text), nil
	})

	t["dirOf"] = unary(func(v value.Value) (value.Value, error) {
		s, err := value.ForceString(v)
		if err != nil {
			return nil, err
		}
		if i := strings.LastIndexByte(s.Text, '/'); i >= 0 {
			return value.NewString(s.Text[:i]), nil
		}
		return value.NewString(""), nil
	})

	t["toString"] = unary(func(v value.Value) (value.Value, error) {
		s, err := value.ForceToString(v)
		if err != nil {
			return nil, err
		}
		return value.NewString(s), nil
	})

	t["concatStringsSep"] = binary(func(sep, list value.Value) (value.Value, error) {
		ss, err := value.ForceString(sep)
		if err != nil {
			return nil, err
		}
		l, err := value.ForceList(list)
		if err != nil {
			return nil, err
		}
		parts := make([]string, len(l))
		for i, e := range l {
			s, err := value.ForceString(e)
			if err != nil {
				return nil, err
			}
			parts[i] = s.Text
		}
		return value.NewString(strings.Join(parts, ss.Text)), nil
	})

	t["replaceStrings"] = ternary(func(from, to, s value.Value) (value.Value, error) {
		fromL, err := value.ForceList(from)
		if err != nil {
			return nil, err
		}
		toL, err := value.ForceList(to)
		if err != nil {
			return nil, err
		}
		src, err := value.ForceString(s)
		if err != nil {
			return nil, err
		}
		fromStrs := make([]string, len(fromL))
		for i, e := range fromL {
			fs, err := value.ForceString(e)
			if err != nil {
				return nil, err
			}
			fromStrs[i] = fs.Text
		}
		toStrs := make([]string, len(toL))
		for i, e := range toL {
			ts, err := value.ForceString(e)
			if err != nil {
				return nil, err
			}
			toStrs[i] = ts.Text
		}
		return value.NewString(replaceStrings(fromStrs, toStrs, src.Text)), nil
	})
}

// replaceStrings performs simultaneous, left-to-right, non-overlapping
// substitution: the source is scanned once from position 0, so text
// already produced by a replacement is never re-examined for a
// further match (the "placeholder-indirection" rescanning guard of
// spec.md §4.5). An empty `from` entry matches at every position,
// including immediately before each untouched character and at the
// end of the string.
func replaceStrings(from, to []string, s string) string {
	var b strings.Builder
	i := 0
	for i <= len(s) {
		idx, matchLen := -1, 0
		for k, f := range from {
			if f == "" {
				idx, matchLen = k, 0
				break
			}
			if i+len(f) <= len(s) && s[i:i+len(f)] == f {
				idx, matchLen = k, len(f)
				break
			}
		}
		if idx >= 0 {
			b.WriteString(to[idx])
		}
		if matchLen > 0 {
			i += matchLen
			continue
		}
		if i < len(s) {
			b.WriteByte(s[i])
		}
		i++
	}
	return b.String()
}
