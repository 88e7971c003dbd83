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

// Package debug provides the ambient tracing facility shared by the
// thunk core, the import engine, and the trace builtin, modeled on
// the verbosity switch in cuelang.org/go/internal/core/adt/log.go.
package debug

import (
	"log"

	"github.com/kr/pretty"
)

func init() {
	log.SetFlags(0)
}

// Verbosity controls whether Logf emits anything. Tests flip this on
// to assert tracing fires at the expected points; production code
// leaves it at the default of false.
var Verbosity int

// Logf writes a trace line when Verbosity > 0.
func Logf(format string, args ...any) {
	if Verbosity > 0 {
		log.Printf(format, args...)
	}
}

// Dumpf logs label followed by a pretty-printed rendering of v, for
// the cases where a one-line Logf isn't enough to see what went
// wrong (an entry's full state on a failed import, say).
func Dumpf(label string, v any) {
	if Verbosity > 0 {
		log.Printf("%s: %s", label, pretty.Sprint(v))
	}
}
