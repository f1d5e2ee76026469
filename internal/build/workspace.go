// Copyright 2025 GS Works
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package build runs the AUR clone-and-build pipeline: a per-package
// workspace under the cache directory, a git clone of the build recipe, and
// a makepkg invocation inside it.
package build

import (
	"fmt"
	"os"
	"path/filepath"

	raurerrors "github.com/GS-Works/raur/internal/errors"
)

// Workspace manages per-package build directories under a fixed cache root.
// Directory paths are deterministic (<cache>/<package>), so two concurrent
// installs of the same package race on them; that is an accepted limitation.
type Workspace struct {
	root string
}

// NewWorkspace creates a Workspace rooted at cacheDir.
func NewWorkspace(cacheDir string) *Workspace {
	return &Workspace{root: cacheDir}
}

// Root returns the cache root directory.
func (w *Workspace) Root() string {
	return w.root
}

// Dir returns the build directory for a package.
func (w *Workspace) Dir(pkg string) string {
	return filepath.Join(w.root, pkg)
}

// Reset prepares a fresh build directory for a package: the cache root is
// created if missing and any stale checkout from a previous attempt is
// removed. The directory itself is left to git clone to create. Builds are
// never cleaned up afterwards; the checkout stays around for inspection.
func (w *Workspace) Reset(pkg string) (string, error) {
	if err := os.MkdirAll(w.root, 0o755); err != nil {
		return "", fmt.Errorf("creating cache directory %s: %v: %w", w.root, err, raurerrors.ErrWorkspace)
	}

	dir := w.Dir(pkg)
	if err := os.RemoveAll(dir); err != nil {
		return "", fmt.Errorf("removing stale workspace %s: %v: %w", dir, err, raurerrors.ErrWorkspace)
	}

	return dir, nil
}
