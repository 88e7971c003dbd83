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
	"os"
	"path/filepath"
	"strings"

	"github.com/nixrt/nixrt/internal/rt/config"
	"github.com/nixrt/nixrt/rt/errors"
)

// Anchor is one of spec.md §6's four export/import path kinds,
// generalized from cue/load's root-relative vs. absolute import path
// resolution to the runtime facade's four-way split.
type Anchor int

const (
	Relative Anchor = iota
	Absolute
	Home
	Store
)

func (a Anchor) String() string {
	switch a {
	case Relative:
		return "Relative"
	case Absolute:
		return "Absolute"
	case Home:
		return "Home"
	case Store:
		return "Store"
	default:
		return "unknown"
	}
}

// resolveAnchor implements runtime.export's per-anchor rule.
// moduleDir is the directory of the currently-evaluating module, used
// for Relative resolution.
func resolveAnchor(a Anchor, payload, moduleDir string, cfg config.Config) (string, error) {
	switch a {
	case Relative:
		return filepath.Clean(filepath.Join(moduleDir, payload)), nil
	case Absolute:
		return filepath.Clean(payload), nil
	case Home:
		return filepath.Clean(filepath.Join(cfg.Home, payload)), nil
	case Store:
		return resolveStore(payload, cfg)
	default:
		return "", errors.NewEvalError("export: unknown anchor %v", a)
	}
}

// resolveStore implements the NIX_PATH search described in spec.md §6:
// the payload's first path segment is checked against each named
// search-path entry; failing that, each unnamed entry is tried as a
// prefix, in order, and the first existing readable resolution wins.
func resolveStore(payload string, cfg config.Config) (string, error) {
	head, rest := payload, ""
	if i := strings.IndexByte(payload, '/'); i >= 0 {
		head, rest = payload[:i], payload[i:]
	}

	for _, e := range cfg.NixPath {
		if e.Name != "" && e.Name == head {
			return filepath.Clean(filepath.Join(e.Prefix, rest)), nil
		}
	}
	for _, e := range cfg.NixPath {
		if e.Name != "" {
			continue
		}
		candidate := filepath.Clean(filepath.Join(e.Prefix, payload))
		if pathReadable(candidate) {
			return candidate, nil
		}
	}
	return "", errors.NewEvalError("export did not resolve: %s", payload)
}

func pathReadable(p string) bool {
	f, err := os.Open(p)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
