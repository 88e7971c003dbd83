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
	"bytes"
	"encoding/json"
	"math/big"

	"github.com/nixrt/nixrt/internal/rt/value"
	"github.com/nixrt/nixrt/rt/errors"
)

// pollutedKey is the textual stand-in fromJSON substitutes for a
// literal "__proto__" object key, so a hostile JSON payload can never
// smuggle a write into the prototype-guarded name a rec-scope
// reserves (spec.md §4.2's concern, applied to data as well as code).
const pollutedKey = "__pollutants__"

// ToJSON exposes the toJSON conversion directly to Go callers (the
// CLI's `eval` command prints a module's result this way without
// going through a Table lookup).
func ToJSON(v value.Value) (string, error) {
	j, err := valueToJSON(v)
	if err != nil {
		return "", err
	}
	out, err := json.MarshalIndent(j, "", "  ")
	if err != nil {
		return "", errors.NewEvalError("toJSON: %v", err)
	}
	return string(out), nil
}

func registerJSON(t Table) {
	t["fromJSON"] = unary(func(v value.Value) (value.Value, error) {
		s, err := value.ForceString(v)
		if err != nil {
			return nil, err
		}
		dec := json.NewDecoder(bytes.NewReader([]byte(s.Text)))
		dec.UseNumber()
		var raw any
		if err := dec.Decode(&raw); err != nil {
			return nil, errors.NewEvalError("fromJSON: %v", err)
		}
		return jsonToValue(raw), nil
	})

	t["toJSON"] = unary(func(v value.Value) (value.Value, error) {
		j, err := valueToJSON(v)
		if err != nil {
			return nil, err
		}
		out, err := json.Marshal(j)
		if err != nil {
			return nil, errors.NewEvalError("toJSON: %v", err)
		}
		return value.NewString(string(out)), nil
	})
}

func jsonToValue(raw any) value.Value {
	switch x := raw.(type) {
	case nil:
		return value.NullValue
	case bool:
		return value.Bool(x)
	case json.Number:
		if i, ok := new(big.Int).SetString(x.String(), 10); ok {
			return value.Int{V: i}
		}
		f, _ := x.Float64()
		return value.Float(f)
	case string:
		return value.NewString(x)
	case []any:
		out := make(value.List, len(x))
		for i, e := range x {
			out[i] = jsonToValue(e)
		}
		return out
	case map[string]any:
		out := make(value.AttrSet, len(x))
		for k, e := range x {
			if k == "__proto__" {
				k = pollutedKey
			}
			out[k] = jsonToValue(e)
		}
		return out
	default:
		return value.NullValue
	}
}

// valueToJSON forces v (recursively through containers) into a plain
// Go value encoding/json can marshal, preserving Nix's Int/Float
// split by emitting json.Number for Int so large integers are not
// silently rounded through float64.
func valueToJSON(v value.Value) (any, error) {
	fv, err := value.Force(v)
	if err != nil {
		return nil, err
	}
	switch x := fv.(type) {
	case value.Null:
		return nil, nil
	case value.Bool:
		return bool(x), nil
	case value.Int:
		return json.Number(x.V.String()), nil
	case value.Float:
		return float64(x), nil
	case value.String:
		return x.Text, nil
	case value.Path:
		return string(x), nil
	case value.List:
		out := make([]any, len(x))
		for i, e := range x {
			jv, err := valueToJSON(e)
			if err != nil {
				return nil, err
			}
			out[i] = jv
		}
		return out, nil
	case value.AttrSet:
		keys := x.SortedKeys()
		m := make(map[string]any, len(x))
		for _, k := range keys {
			jv, err := valueToJSON(x[k])
			if err != nil {
				return nil, err
			}
			m[k] = jv
		}
		return m, nil
	default:
		return nil, errors.NewTypeError("cannot convert value to JSON")
	}
}
