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

package build

import (
	"context"
	"fmt"

	"github.com/GS-Works/raur/internal/pacman"
)

// Builder clones AUR build recipes and runs makepkg on them. Both steps go
// through the shared command Runner so tests can spy on the invocations.
type Builder struct {
	runner        pacman.Runner
	cloneTemplate string
}

// NewBuilder creates a Builder. cloneTemplate receives the package name via
// fmt.Sprintf and must produce the recipe's git URL.
func NewBuilder(runner pacman.Runner, cloneTemplate string) *Builder {
	return &Builder{
		runner:        runner,
		cloneTemplate: cloneTemplate,
	}
}

// CloneURL returns the recipe URL for a package.
func (b *Builder) CloneURL(pkg string) string {
	return fmt.Sprintf(b.cloneTemplate, pkg)
}

// Clone fetches the build recipe for pkg into dir.
func (b *Builder) Clone(ctx context.Context, pkg, dir string) error {
	return b.runner.Show(ctx, "", "git", "clone", b.CloneURL(pkg), dir)
}

// Build runs makepkg in dir, syncing build dependencies and installing the
// result. With cascade, build dependencies and artifacts are cleaned up
// after install (-sci); without, they are left in place (-si).
func (b *Builder) Build(ctx context.Context, dir string, cascade bool) error {
	flag := "-si"
	if cascade {
		flag = "-sci"
	}
	return b.runner.Show(ctx, dir, "makepkg", flag, "--noconfirm")
}
