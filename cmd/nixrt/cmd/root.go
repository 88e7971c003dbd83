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

// Package cmd implements nixrt's command tree, grounded on
// cmd/cue/cmd's root/Command split, distilled to the two smoke-test
// subcommands this runtime needs.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// New creates the top-level nixrt command.
func New(args []string) *cobra.Command {
	root := &cobra.Command{
		Use:           "nixrt",
		Short:         "smoke-test front end for the nixrt runtime library",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newEvalCmd())
	root.AddCommand(newFmtErrorsCmd())
	root.AddCommand(newVersionCmd())
	root.SetArgs(args)
	return root
}

// Main runs nixrt and returns the process exit code.
func Main() int {
	root := New(os.Args[1:])
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
