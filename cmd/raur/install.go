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

package main

import (
	"context"

	"github.com/GS-Works/raur/internal/build"
	"github.com/GS-Works/raur/internal/output"
	"github.com/spf13/cobra"
)

// installCmd represents the install command
func newInstallCommand(configPath *string) *cobra.Command {
	var cascade bool

	cmd := &cobra.Command{
		Use:   "install <package>...",
		Short: "Install packages from the official repos, falling back to the AUR",
		Long: `Install one or more packages. Each package is checked against the
official repositories first; anything pacman -Ss matches installs through
pacman. Otherwise the package's AUR recipe is cloned into the cache
directory and built with makepkg.

Packages are processed one at a time, in the order given. A failing clone
or build is reported and the next package is processed; it does not abort
the whole request.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv(*configPath)
			if err != nil {
				return err
			}

			ws := build.NewWorkspace(env.cfg.Cache.Dir)
			builder := build.NewBuilder(env.runner, env.cfg.AUR.CloneURLTemplate)

			for _, pkg := range args {
				if err := installOne(cmd.Context(), env, ws, builder, pkg, cascade); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&cascade, "cascade", "c", false, "Clean build deps and artifacts after an AUR install")

	return cmd
}

// installOne installs a single package. Only workspace I/O failures and a
// search that cannot run at all are fatal; pacman, git, and makepkg
// failures are reported and the caller moves on.
func installOne(ctx context.Context, env *appEnv, ws *build.Workspace, builder *build.Builder, pkg string, cascade bool) error {
	p := env.printer

	// Non-empty search output is the official-presence heuristic: it only
	// proves the query matched something, not an exact name match.
	out, err := env.pac.Search(ctx, pkg)
	if err != nil {
		return err
	}

	if out != "" {
		p.Infof("📦 Installing '%s' from official repos", p.Green(pkg))
		if err := env.pac.Install(ctx, pkg); err != nil {
			p.Failf("Failed to install '%s' from official repos%s", p.Red(pkg), failureHint(err))
		} else {
			p.Successf("Installed '%s' from official repos", p.Green(pkg))
		}
		return nil
	}

	p.Infof("🌐 '%s' not found in official repos, building from AUR", p.Yellow(pkg))

	dir, err := ws.Reset(pkg)
	if err != nil {
		return err
	}

	if err := builder.Clone(ctx, pkg, dir); err != nil {
		p.Failf("Git clone failed for '%s'%s", p.Red(pkg), failureHint(err))
		return nil
	}

	spinner := output.NewSpinner(env.stderr, "Building package...")
	spinner.Start()
	buildErr := builder.Build(ctx, dir, cascade)
	spinner.Stop()

	if buildErr != nil {
		p.Failf("Failed to install '%s' from AUR%s", p.Red(pkg), failureHint(buildErr))
	} else {
		p.Successf("Installed '%s' from AUR", p.Green(pkg))
	}

	return nil
}
