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

// Command nixrt is a small smoke-testing front end for the runtime
// library, not a Nix CLI or REPL (explicitly out of scope per
// spec.md §1). It loads a fixture module through the import engine
// and prints its evaluated JSON, or pretty-prints an error fixture.
package main

import (
	"os"

	"github.com/nixrt/nixrt/cmd/nixrt/cmd"
)

func main() {
	os.Exit(cmd.Main())
}
