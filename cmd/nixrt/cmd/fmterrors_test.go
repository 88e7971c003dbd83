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

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func runFmtErrorsFixture(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "fixture")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	c := &cobra.Command{}
	var out bytes.Buffer
	c.SetOut(&out)
	if err := runFmtErrors(c, p); err != nil {
		t.Fatal(err)
	}
	return out.String()
}

func TestFmtErrorsAcceptsJSONFixture(t *testing.T) {
	got := runFmtErrorsFixture(t, `[{"kind": "TypeError", "message": "boom"}]`)
	if !strings.Contains(got, "TypeError: boom") {
		t.Fatalf("got %q", got)
	}
}

func TestFmtErrorsAcceptsYAMLFixture(t *testing.T) {
	got := runFmtErrorsFixture(t, "- kind: NixAbortError\n  message: fatal\n")
	if !strings.Contains(got, "NixAbortError: fatal") {
		t.Fatalf("got %q", got)
	}
}

func TestFmtErrorsUnknownKindFallsBackToEvalError(t *testing.T) {
	got := runFmtErrorsFixture(t, `[{"kind": "Bogus", "message": "x"}]`)
	if !strings.Contains(got, "Bogus: x") {
		t.Fatalf("got %q", got)
	}
}
