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

// Package translate holds Fake, which implements the Translator
// contract defined in internal/rt/runtime: an in-memory stand-in for the
// real Nix-to-Go translator (out of scope per spec.md §1), just
// capable enough to drive the import engine's own tests, including
// the import-cycle scenario of spec.md §8.
//
// Fake's source format is one `name = expr` binding per line, where
// expr is a quoted string, an integer, `true`/`false`, or
// `import "path"`. Blank lines and lines starting with `#` are
// ignored. It exists purely as a fixture: it is not, and is not meant
// to resemble, a Nix parser.
package translate

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/nixrt/nixrt/internal/rt/adt"
	"github.com/nixrt/nixrt/internal/rt/runtime"
	"github.com/nixrt/nixrt/internal/rt/value"
	"github.com/nixrt/nixrt/pkg/builtins"
	"github.com/nixrt/nixrt/rt/errors"
)

// Fake implements runtime.Translator.
type Fake struct{}

func (Fake) Translate(src []byte, originPath string) (runtime.ModuleFunc, error) {
	lines := strings.Split(string(src), "\n")
	type binding struct {
		name string
		expr string
	}
	var bindings []binding
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			return nil, errors.NewEvalError("%s:%d: expected `name = expr`, got %q", originPath, i+1, line)
		}
		bindings = append(bindings, binding{
			name: strings.TrimSpace(line[:eq]),
			expr: strings.TrimSpace(line[eq+1:]),
		})
	}

	return func(facade *runtime.Facade, table builtins.Table) (value.Value, error) {
		out := value.AttrSet{}
		for _, b := range bindings {
			expr := b.expr
			switch {
			case strings.HasPrefix(expr, "import "):
				path := unquote(strings.TrimSpace(strings.TrimPrefix(expr, "import ")))
				out[b.name] = adt.Lazy(func() (value.Value, error) {
					return facade.Import(path)
				})
			case expr == "true":
				out[b.name] = value.Bool(true)
			case expr == "false":
				out[b.name] = value.Bool(false)
			case strings.HasPrefix(expr, `"`):
				out[b.name] = value.NewString(unquote(expr))
			default:
				n, ok := new(big.Int).SetString(expr, 10)
				if !ok {
					return nil, errors.NewEvalError("%s: cannot parse expression %q", originPath, expr)
				}
				out[b.name] = value.Int{V: n}
			}
		}
		return out, nil
	}, nil
}

func unquote(s string) string {
	if u, err := strconv.Unquote(s); err == nil {
		return u
	}
	return strings.Trim(s, `"`)
}
