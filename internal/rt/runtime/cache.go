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

// Package runtime is C7 (the import engine) and C8 (the runtime
// facade): a process-global module cache grounded on
// internal/core/runtime.Index's map-keyed-by-path-with-placeholder
// pattern, generalized from CUE's build-instance cache to Nix's
// evaluated-module cache.
package runtime

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/nixrt/nixrt/internal/rt/adt"
	"github.com/nixrt/nixrt/internal/rt/config"
	"github.com/nixrt/nixrt/internal/rt/debug"
	"github.com/nixrt/nixrt/internal/rt/value"
	"github.com/nixrt/nixrt/pkg/builtins"
	"github.com/nixrt/nixrt/rt/errors"
)

// entry is one cache slot. placeholder is the thunk installed before
// translation begins (step 4 of spec.md §4.7's import algorithm); a
// second, concurrent-in-the-same-call-stack import of the same path
// receives this same Thunk back unforced, so Force's own in-progress
// guard (C1) is what turns an actual import cycle into a definite
// self-referential-evaluation error rather than an infinite loop.
type entry struct {
	id          uuid.UUID
	placeholder value.Value
	settled     bool
	value       value.Value
	err         error
}

// ModuleCache is the process-wide, append-only import cache (spec.md
// §5): entries are never removed once written.
type ModuleCache struct {
	translator Translator
	table      builtins.Table
	cfg        config.Config
	entries    map[string]*entry
	hits       int
	loads      int
}

// NewModuleCache builds an empty cache bound to one Translator and one
// builtins table, shared by every module it imports.
func NewModuleCache(translator Translator, cfg config.Config) *ModuleCache {
	return &ModuleCache{
		translator: translator,
		table:      builtins.NewTable(),
		cfg:        cfg,
		entries:    map[string]*entry{},
	}
}

// NewFacade builds a Facade for a module rooted at dir, bound to this cache.
func (c *ModuleCache) NewFacade(dir string) *Facade {
	return newFacade(dir, c, c.cfg)
}

// Import implements spec.md §4.7's import(p) algorithm.
func (c *ModuleCache) Import(p string) (value.Value, error) {
	canon, err := canonicalize(p)
	if err != nil {
		return nil, errors.WrapEvalError(err, "import: cannot canonicalise %s", p)
	}

	if info, statErr := os.Stat(canon); statErr == nil && info.IsDir() {
		canon = filepath.Join(canon, "default.nix")
	}

	if e, ok := c.entries[canon]; ok {
		c.hits++
		if e.settled {
			return e.value, e.err
		}
		return e.placeholder, nil
	}

	e := &entry{id: uuid.New(), placeholder: adt.Lazy(func() (value.Value, error) {
		return c.translateAndRun(canon)
	})}
	c.entries[canon] = e
	debug.Logf("import: module load #%s begin %s", e.id, canon)

	v, runErr := value.Force(e.placeholder)
	e.settled = true
	if runErr != nil {
		e.err = errors.WrapEvalError(runErr, "import failed: %s", canon)
		debug.Logf("import: module load #%s failed: %v", e.id, e.err)
		debug.Dumpf("import: failed entry", struct {
			ID   string
			Path string
		}{e.id.String(), canon})
		return nil, e.err
	}
	e.value = v
	c.loads++
	debug.Logf("import: module load #%s done", e.id)
	return v, nil
}

func (c *ModuleCache) translateAndRun(path string) (value.Value, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	mod, err := c.translator.Translate(src, path)
	if err != nil {
		return nil, err
	}
	facade := c.NewFacade(filepath.Dir(path))
	return mod(facade, c.table)
}

func canonicalize(p string) (string, error) {
	if !filepath.IsAbs(p) {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", err
		}
		p = abs
	}
	return filepath.Clean(p), nil
}

// Stats reports the running totals the CLI's -v flag and the import
// idempotence tests of spec.md §8 consult: entries translated exactly
// once (loads) versus repeat lookups served from the cache (hits).
// Distilled from the teacher's cue/stats package to the one counter
// pair this runtime needs.
type Stats struct {
	Loads int
	Hits  int
}

func (c *ModuleCache) Stats() Stats {
	return Stats{Loads: c.loads, Hits: c.hits}
}
