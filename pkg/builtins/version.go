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
	"math/big"
	"strings"

	"github.com/nixrt/nixrt/internal/rt/value"
)

// tokenize splits a version string the way compareVersions/splitVersion
// require: delimiters (any non-alphanumeric rune) separate tokens, and
// within a maximal alphanumeric run, digit runs and letter runs each
// become their own token. Version strings in practice are ASCII, so a
// byte-wise scan is sufficient and avoids the decoding overhead of a
// rune-wise unicode.IsLetter/IsDigit walk.
func tokenize(s string) []string {
	var tokens []string
	n := len(s)
	i := 0
	for i < n {
		if !isAlnumByte(s[i]) {
			i++
			continue
		}
		j := i
		for j < n && isAlnumByte(s[j]) {
			j++
		}
		tokens = append(tokens, splitDigitLetterRuns(s[i:j])...)
		i = j
	}
	return tokens
}

func isAlnumByte(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

func splitDigitLetterRuns(seg string) []string {
	var out []string
	i := 0
	for i < len(seg) {
		j := i
		digit := isDigitByte(seg[i])
		for j < len(seg) && isDigitByte(seg[j]) == digit {
			j++
		}
		out = append(out, seg[i:j])
		i = j
	}
	return out
}

// compareComponent implements the pairwise rules of spec.md §4.5's
// compareVersions decomposition table.
func compareComponent(a, b string) int {
	if a == b {
		return 0
	}
	aNum, aIsNum := asBigInt(a)
	bNum, bIsNum := asBigInt(b)
	switch {
	case aIsNum && bIsNum:
		return aNum.Cmp(bNum)
	case a == "" && bIsNum:
		return -1
	case b == "" && aIsNum:
		return 1
	case a == "pre":
		return -1
	case b == "pre":
		return 1
	case aIsNum:
		return 1
	case bIsNum:
		return -1
	default:
		return strings.Compare(a, b)
	}
}

func asBigInt(s string) (*big.Int, bool) {
	if s == "" {
		return nil, false
	}
	for i := 0; i < len(s); i++ {
		if !isDigitByte(s[i]) {
			return nil, false
		}
	}
	n := new(big.Int)
	n.SetString(s, 10)
	return n, true
}

func compareVersionStrings(a, b string) int {
	ta, tb := tokenize(a), tokenize(b)
	n := len(ta)
	if len(tb) > n {
		n = len(tb)
	}
	for i := 0; i < n; i++ {
		var ca, cb string
		if i < len(ta) {
			ca = ta[i]
		}
		if i < len(tb) {
			cb = tb[i]
		}
		if c := compareComponent(ca, cb); c != 0 {
			return c
		}
	}
	return 0
}

func registerVersion(t Table) {
	t["splitVersion"] = unary(func(v value.Value) (value.Value, error) {
		s, err := value.ForceString(v)
		if err != nil {
			return nil, err
		}
		toks := tokenize(s.Text)
		out := make(value.List, len(toks))
		for i, tok := range toks {
			out[i] = value.NewString(tok)
		}
		return out, nil
	})

	t["compareVersions"] = binary(func(a, b value.Value) (value.Value, error) {
		sa, err := value.ForceString(a)
		if err != nil {
			return nil, err
		}
		sb, err := value.ForceString(b)
		if err != nil {
			return nil, err
		}
		return value.NewInt(int64(compareVersionStrings(sa.Text, sb.Text))), nil
	})
}
