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

// Package config gathers the runtime's two ambient environment
// variables once, at facade-construction time, the way the teacher's
// cue/load.Config is built once per root instead of letting individual
// packages call os.Getenv ad hoc.
package config

import (
	"os"
	"strings"
)

// SearchEntry is one NIX_PATH component: either `name=prefix` (Name
// non-empty) or a bare `prefix` (Name empty), tried in listed order.
type SearchEntry struct {
	Name   string
	Prefix string
}

// Config is the ambient environment the import engine and Store-anchor
// resolution consult.
type Config struct {
	NixPath []SearchEntry
	Home    string
}

// FromEnv reads NIX_PATH and HOME once.
func FromEnv() Config {
	return Config{
		NixPath: parseNixPath(os.Getenv("NIX_PATH")),
		Home:    os.Getenv("HOME"),
	}
}

func parseNixPath(s string) []SearchEntry {
	if s == "" {
		return nil
	}
	var out []SearchEntry
	for _, part := range strings.Split(s, ":") {
		if part == "" {
			continue
		}
		if i := strings.IndexByte(part, '='); i >= 0 {
			out = append(out, SearchEntry{Name: part[:i], Prefix: part[i+1:]})
		} else {
			out = append(out, SearchEntry{Prefix: part})
		}
	}
	return out
}
