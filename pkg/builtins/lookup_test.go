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
	"github.com/nixrt/nixrt/rt/errors"
)

func TestOrDefaultFallsBackOnMissingAttr(t *testing.T) {
	attempt := func() (value.Value, error) {
		return nil, errors.NewAttrMissingError("x")
	}
	got, err := OrDefault(attempt, value.NewInt(7))
	if err != nil {
		t.Fatal(err)
	}
	if got.(value.Int).V.Int64() != 7 {
		t.Fatalf("got %v, want the fallback 7", got)
	}
}

func TestOrDefaultPassesThroughSuccess(t *testing.T) {
	attempt := func() (value.Value, error) {
		return value.NewInt(1), nil
	}
	got, err := OrDefault(attempt, value.NewInt(7))
	if err != nil {
		t.Fatal(err)
	}
	if got.(value.Int).V.Int64() != 1 {
		t.Fatalf("got %v, want 1", got)
	}
}

func TestOrDefaultPropagatesOtherErrors(t *testing.T) {
	attempt := func() (value.Value, error) {
		return nil, errors.NewTypeError("not a string")
	}
	if _, err := OrDefault(attempt, value.NewInt(7)); err == nil {
		t.Fatal("expected a non-AttrMissingError to propagate unchanged")
	}
}
