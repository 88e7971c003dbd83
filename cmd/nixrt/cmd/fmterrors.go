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
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nixrt/nixrt/rt/errors"
)

// fixtureError is the on-disk shape fmt-errors reads: a flat array of
// {kind, message} records, one per error in the rt/errors.List it
// reconstructs. Decoded with yaml.v3 rather than encoding/json so the
// same fixture file can be plain JSON (a valid YAML document) or
// actual YAML, matching the teacher's own fixture-loading convention.
type fixtureError struct {
	Kind    string `yaml:"kind"`
	Message string `yaml:"message"`
}

func newFmtErrorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt-errors <file>",
		Short: "decode a rt/errors.List fixture and pretty-print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runFmtErrors(c, args[0])
		},
	}
}

func runFmtErrors(c *cobra.Command, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fixtures []fixtureError
	if err := yaml.Unmarshal(raw, &fixtures); err != nil {
		return err
	}

	var list errors.List
	for _, fe := range fixtures {
		list.Add(fromFixture(fe))
	}

	printErrorList(c, list)
	return nil
}

func fromFixture(fe fixtureError) error {
	switch fe.Kind {
	case "TypeError":
		return errors.NewTypeError("%s", fe.Message)
	case "RangeError":
		return errors.NewRangeError("%s", fe.Message)
	case "ScopeError":
		return errors.NewScopeError("%s", fe.Message)
	case "NixEvalError":
		return errors.NewEvalError("%s", fe.Message)
	case "NixAbortError":
		return errors.NewAbortError("%s", fe.Message)
	default:
		return errors.NewEvalError("%s: %s", fe.Kind, fe.Message)
	}
}

// printErrorList renders one line per error, `Kind: message`, the way
// cue/errors.Print renders one line per error in a list — minus
// position information, which this runtime's errors do not carry
// (spec.md §7).
func printErrorList(c *cobra.Command, list errors.List) {
	w := c.OutOrStdout()
	for _, err := range list {
		kind := "Error"
		if e, ok := err.(errors.Error); ok {
			kind = e.ErrorKind().String()
		}
		fmt.Fprintf(w, "%s: %s\n", kind, err.Error())
	}
}
