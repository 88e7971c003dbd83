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

func TestTryEvalOverThrow(t *testing.T) {
	tbl := Table{}
	registerControl(tbl)
	throwL, _ := value.ForceLambda(tbl["throw"])
	thrown, err := throwL.Apply(value.NewString("boom"))
	if err != nil {
		t.Fatal(err)
	}
	result := apply1(t, tbl["tryEval"], thrown)
	a := result.(value.AttrSet)
	if bool(a["success"].(value.Bool)) {
		t.Fatal("tryEval over a thrown value should report success=false")
	}
}

func TestTryEvalOverSuccess(t *testing.T) {
	tbl := Table{}
	registerControl(tbl)
	result := apply1(t, tbl["tryEval"], value.NewInt(5))
	a := result.(value.AttrSet)
	if !bool(a["success"].(value.Bool)) {
		t.Fatal("tryEval over a concrete value should report success=true")
	}
	v, _ := value.Force(a["value"])
	if v.(value.Int).V.Int64() != 5 {
		t.Fatalf("got %v, want 5", v)
	}
}

func TestTryEvalDoesNotCatchAbort(t *testing.T) {
	tbl := Table{}
	registerControl(tbl)
	abortL, _ := value.ForceLambda(tbl["abort"])
	aborted, err := abortL.Apply(value.NewString("fatal"))
	if err != nil {
		t.Fatal(err)
	}
	l, _ := value.ForceLambda(tbl["tryEval"])
	_, err = l.Apply(aborted)
	if err == nil {
		t.Fatal("tryEval must not intercept NixAbortError")
	}
	var abortErr *errors.NixAbortError
	if !errors.As(err, &abortErr) {
		t.Fatalf("expected NixAbortError to propagate unchanged, got %T", err)
	}
}

func TestAssertFailureIsEvalError(t *testing.T) {
	tbl := Table{}
	registerControl(tbl)
	l, _ := value.ForceLambda(tbl["assert"])
	step, err := l.Apply(value.Bool(false))
	if err != nil {
		t.Fatal(err)
	}
	stepL, _ := value.ForceLambda(step)
	_, err = stepL.Apply(value.NewInt(1))
	if err == nil {
		t.Fatal("expected NixEvalError on failed assertion")
	}
	var evalErr *errors.NixEvalError
	if !errors.As(err, &evalErr) {
		t.Fatalf("got %T, want *errors.NixEvalError", err)
	}
}

func TestSeqForcesLeftReturnsRight(t *testing.T) {
	tbl := Table{}
	registerControl(tbl)
	forced := false
	left := &fakeThunker{fn: func() (value.Value, error) { forced = true; return value.NullValue, nil }}
	got := apply2(t, tbl["seq"], left, value.NewInt(9))
	if !forced {
		t.Fatal("seq must force its first argument")
	}
	if got.(value.Int).V.Int64() != 9 {
		t.Fatalf("got %v, want 9", got)
	}
}

type fakeThunker struct {
	fn func() (value.Value, error)
}

func (*fakeThunker) isNixValue() {}
func (f *fakeThunker) Force() (value.Value, error) {
	return f.fn()
}
