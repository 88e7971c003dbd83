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

func TestArithBitOps(t *testing.T) {
	tbl := Table{}
	registerArith(tbl)

	got := apply2(t, tbl["bitAnd"], value.NewInt(6), value.NewInt(3))
	if got.(value.Int).V.Int64() != 2 {
		t.Fatalf("bitAnd(6,3) = %v, want 2", got)
	}
	got = apply2(t, tbl["bitOr"], value.NewInt(6), value.NewInt(1))
	if got.(value.Int).V.Int64() != 7 {
		t.Fatalf("bitOr(6,1) = %v, want 7", got)
	}
	got = apply2(t, tbl["bitXor"], value.NewInt(6), value.NewInt(3))
	if got.(value.Int).V.Int64() != 5 {
		t.Fatalf("bitXor(6,3) = %v, want 5", got)
	}
}

func TestArithCeilFloor(t *testing.T) {
	tbl := Table{}
	registerArith(tbl)

	got := apply1(t, tbl["ceil"], value.Float(1.2))
	if got.(value.Int).V.Int64() != 2 {
		t.Fatalf("ceil(1.2) = %v, want 2", got)
	}
	got = apply1(t, tbl["floor"], value.Float(1.8))
	if got.(value.Int).V.Int64() != 1 {
		t.Fatalf("floor(1.8) = %v, want 1", got)
	}
	got = apply1(t, tbl["ceil"], value.NewInt(5))
	if got.(value.Int).V.Int64() != 5 {
		t.Fatalf("ceil on an Int must be a no-op, got %v", got)
	}
}

func TestArithAddSub(t *testing.T) {
	tbl := Table{}
	registerArith(tbl)

	got := apply2(t, tbl["add"], value.NewInt(2), value.NewInt(3))
	if got.(value.Int).V.Int64() != 5 {
		t.Fatalf("add(2,3) = %v, want 5", got)
	}
	got = apply2(t, tbl["sub"], value.NewInt(2), value.NewInt(3))
	if got.(value.Int).V.Int64() != -1 {
		t.Fatalf("sub(2,3) = %v, want -1", got)
	}
}
