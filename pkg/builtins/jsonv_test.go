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
	"testing"

	"github.com/nixrt/nixrt/internal/rt/ops"
	"github.com/nixrt/nixrt/internal/rt/value"
)

func TestJSONRoundTrip(t *testing.T) {
	tbl := Table{}
	registerJSON(tbl)

	original := value.AttrSet{
		"name":    value.NewString("foo"),
		"count":   value.NewInt(3),
		"enabled": value.Bool(true),
		"tags":    value.List{value.NewString("a"), value.NewString("b")},
	}

	encoded := apply1(t, tbl["toJSON"], original)
	decoded := apply1(t, tbl["fromJSON"], encoded)

	eq, err := ops.Equal(original, decoded)
	if err != nil {
		t.Fatal(err)
	}
	if !bool(eq.(value.Bool)) {
		t.Fatalf("round-trip mismatch: original=%v decoded=%v", original, decoded)
	}
}

func TestFromJSONSanitizesProtoKey(t *testing.T) {
	tbl := Table{}
	registerJSON(tbl)
	decoded := apply1(t, tbl["fromJSON"], value.NewString(`{"__proto__": 1}`))
	a := decoded.(value.AttrSet)
	if _, ok := a["__proto__"]; ok {
		t.Fatal("fromJSON must not produce a literal __proto__ key")
	}
	if _, ok := a[pollutedKey]; !ok {
		t.Fatalf("expected sanitized key %q, got %v", pollutedKey, a)
	}
}

func TestToJSONPreservesLargeInt(t *testing.T) {
	tbl := Table{}
	registerJSON(tbl)
	bigInt, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	n := value.Int{V: bigInt}
	out := apply1(t, tbl["toJSON"], n).(value.String)
	if out.Text != "123456789012345678901234567890" {
		t.Fatalf("got %q", out.Text)
	}
}
