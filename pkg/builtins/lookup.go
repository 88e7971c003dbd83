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
	"github.com/nixrt/nixrt/internal/rt/value"
	"github.com/nixrt/nixrt/rt/errors"
)

// OrDefault is what the transpiler lowers `e.a.b or default` to: attempt
// runs the attribute-selector chain, and the result is substituted with
// fallback only when attempt fails with an AttrMissingError specifically
// (spec.md §9's resolved open question) — any other error (a type
// mismatch, a thrown exception deeper in the chain) still propagates,
// unlike tryEval which swallows every NixEvalError.
func OrDefault(attempt func() (value.Value, error), fallback value.Value) (value.Value, error) {
	v, err := attempt()
	if err == nil {
		return v, nil
	}
	var missing *errors.AttrMissingError
	if errors.As(err, &missing) {
		return fallback, nil
	}
	return nil, err
}
