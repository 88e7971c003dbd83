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

	"github.com/spf13/cobra"

	"github.com/nixrt/nixrt/internal/rt/config"
	"github.com/nixrt/nixrt/internal/rt/runtime"
	"github.com/nixrt/nixrt/internal/rt/value"
	"github.com/nixrt/nixrt/pkg/builtins"
	"github.com/nixrt/nixrt/rt/translate"
)

func newEvalCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "eval <path>",
		Short: "import a fixture module through the import engine and print its JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runEval(c, args[0], verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print import cache stats to stderr")
	return cmd
}

func runEval(c *cobra.Command, path string, verbose bool) error {
	cache := runtime.NewModuleCache(translate.Fake{}, config.FromEnv())
	v, err := cache.Import(path)
	if err != nil {
		return err
	}
	fv, err := value.Force(v)
	if err != nil {
		return err
	}
	out, err := builtins.ToJSON(fv)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.OutOrStdout(), out)
	if verbose {
		stats := cache.Stats()
		fmt.Fprintf(c.ErrOrStderr(), "loads=%d hits=%d\n", stats.Loads, stats.Hits)
	}
	return nil
}
