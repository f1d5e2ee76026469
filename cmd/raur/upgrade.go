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

	"github.com/spf13/cobra"
)

// upgradeCmd represents the upgrade command
func newUpgradeCommand(configPath *string) *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Sync the databases and upgrade the system",
		Long: `Sync the package databases, then run the combined sync-and-upgrade
(-Syu) non-interactively.

Packages installed from the AUR are not rebuilt or upgraded by this
command; reinstall them explicitly to pick up new versions.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv(*configPath)
			if err != nil {
				return err
			}
			return runUpgrade(cmd.Context(), env, full)
		},
	}

	cmd.Flags().BoolVarP(&full, "full", "y", false, "Force a refresh of all databases before upgrading")

	return cmd
}

// runUpgrade composes the update handler with the full system upgrade.
// A failed sync is reported and the upgrade still runs, matching the
// sequential flow of the underlying pacman calls.
func runUpgrade(ctx context.Context, env *appEnv, full bool) error {
	if err := runUpdate(ctx, env, full); err != nil {
		return err
	}

	if err := env.pac.UpgradeSystem(ctx); err != nil {
		env.printer.Failf("Upgrade failed%s", failureHint(err))
		return nil
	}

	env.printer.Successf("System upgraded successfully")
	return nil
}
