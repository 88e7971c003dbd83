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

package runtime

import (
	"github.com/nixrt/nixrt/internal/rt/value"
	"github.com/nixrt/nixrt/pkg/builtins"
)

// ModuleFunc is what a Translator produces: a module instantiated as a
// function of the two parameters spec.md §4.7 step 4 names, the
// runtime facade and the combined operators+builtins table.
type ModuleFunc func(facade *Facade, table builtins.Table) (value.Value, error)

// Translator is the external collaborator the import engine invokes:
// given source text and its origin path, it returns a ModuleFunc
// ready to instantiate. The real translator (out of scope per
// spec.md §1) lives outside this module; rt/translate's fake drives
// the import engine's own tests.
type Translator interface {
	Translate(src []byte, originPath string) (ModuleFunc, error)
}
