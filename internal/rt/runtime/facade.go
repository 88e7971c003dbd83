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

	"github.com/nixrt/nixrt/internal/rt/config"
	"github.com/nixrt/nixrt/internal/rt/value"
)

// Facade is C8: the per-module object transpiled code calls export,
// import, and pathExists on. One Facade is built per evaluating
// module, with that module's directory baked in for Relative-anchor
// resolution (spec.md §4.7/§6).
type Facade struct {
	dir   string
	cache *ModuleCache
	cfg   config.Config
}

func newFacade(dir string, cache *ModuleCache, cfg config.Config) *Facade {
	return &Facade{dir: dir, cache: cache, cfg: cfg}
}

// Export resolves an anchored path reference to an absolute path.
func (f *Facade) Export(anchor Anchor, payload string) (string, error) {
	return resolveAnchor(anchor, payload, f.dir, f.cfg)
}

// Import loads and evaluates path (via the owning ModuleCache),
// returning the cached result on repeat calls.
func (f *Facade) Import(path string) (value.Value, error) {
	return f.cache.Import(path)
}

// PathExists reports whether path exists (os.Stat succeeds); it never
// returns an error, mirroring builtins.pathExists' non-throwing contract.
func (f *Facade) PathExists(path string) bool {
	_, err := os.Stat(resolveForExistence(f.dir, path))
	return err == nil
}

func resolveForExistence(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
