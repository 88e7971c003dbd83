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

package ops

import (
	"math/big"

	"github.com/nixrt/nixrt/internal/rt/value"
)

// Not implements unary `!`.
func Not(a value.Value) (value.Value, error) {
	b, err := value.ForceBool(a)
	if err != nil {
		return nil, err
	}
	return value.Bool(!b), nil
}

// Neg implements unary `-`.
func Neg(a value.Value) (value.Value, error) {
	fa, err := value.ForceNumber(a)
	if err != nil {
		return nil, err
	}
	if i, ok := fa.(value.Int); ok {
		return value.Int{V: new(big.Int).Neg(i.V)}, nil
	}
	return value.Float(-toFloat(fa)), nil
}
