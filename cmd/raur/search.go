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
	"strings"

	"github.com/GS-Works/raur/internal/output"
	"github.com/spf13/cobra"
)

type searchOptions struct {
	pacmanOnly bool
	aurOnly    bool
	jsonOut    bool
}

// searchCmd represents the search command
func newSearchCommand(configPath *string) *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the official repositories and the AUR",
		Long: `Search for packages in the official repositories and the AUR.

Both sources are queried unless one of the filters is set. --pacman-only
takes precedence: when it is set the AUR is not queried even if --aur-only
is also given. The query is embedded in the AUR RPC URL as-is, so it must
be URL-safe.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv(*configPath)
			if err != nil {
				return err
			}
			return runSearch(cmd.Context(), env, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.pacmanOnly, "pacman-only", false, "Search only official pacman repos")
	cmd.Flags().BoolVar(&opts.aurOnly, "aur-only", false, "Search only AUR")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Emit all AUR results as NDJSON instead of a table")

	return cmd
}

// runSearch executes the search command: the official leg first, then the
// AUR leg. An empty official result is a warning; an unreachable AUR is
// fatal.
func runSearch(ctx context.Context, env *appEnv, query string, opts searchOptions) error {
	p := env.printer
	p.Infof("🔍 Searching for '%s'...", p.Blue(query))

	if !opts.aurOnly {
		if err := searchOfficial(ctx, env, query); err != nil {
			return err
		}
	}

	if !opts.pacmanOnly {
		if err := searchAUR(ctx, env, query, opts.jsonOut); err != nil {
			return err
		}
	}

	return nil
}

// searchOfficial prints at most the configured number of raw pacman -Ss
// lines.
func searchOfficial(ctx context.Context, env *appEnv, query string) error {
	out, err := env.pac.Search(ctx, query)
	if err != nil {
		return err
	}

	if out == "" {
		env.printer.Warnf("Not found in official repos")
		return nil
	}

	env.printer.Infof("📦 Found in official repos:")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for i, line := range lines {
		if i >= env.cfg.Search.Limit {
			break
		}
		env.printer.Infof("  %s", env.printer.Green(line))
	}

	return nil
}

// searchAUR renders the RPC results as a table capped at the configured
// limit, or streams every result as NDJSON in json mode.
func searchAUR(ctx context.Context, env *appEnv, query string, jsonOut bool) error {
	result, err := env.aur.Search(ctx, query)
	if err != nil {
		return err
	}

	if result.ResultCount == 0 {
		env.printer.Failf("No packages found in AUR")
		return nil
	}

	if jsonOut {
		w := output.NewWriter(env.stdout)
		defer w.Close()
		for _, pkg := range result.Packages {
			if err := w.Write(pkg); err != nil {
				return err
			}
		}
		return nil
	}

	env.printer.Infof("🌐 Found %d packages in AUR:", result.ResultCount)

	table := output.NewTable("Name", "Version", "Description")
	for i, pkg := range result.Packages {
		if i >= env.cfg.Search.Limit {
			break
		}
		table.AddRow(pkg.Name, pkg.Version, pkg.DescriptionOrDefault())
	}
	table.Render(env.stdout)

	return nil
}
