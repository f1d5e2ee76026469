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

// updateCmd represents the update command
func newUpdateCommand(configPath *string) *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Sync the package databases",
		Long: `Refresh the pacman package databases (-Sy). With --full the
databases are re-downloaded even if they appear up to date (-Syy).

The AUR has no local index, so there is nothing to sync for it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv(*configPath)
			if err != nil {
				return err
			}
			return runUpdate(cmd.Context(), env, full)
		},
	}

	cmd.Flags().BoolVarP(&full, "full", "y", false, "Force a refresh of all databases (-Syy)")

	return cmd
}

// runUpdate syncs the databases and reports the outcome. A failing sync is
// reported, not propagated.
func runUpdate(ctx context.Context, env *appEnv, full bool) error {
	if err := env.pac.SyncDatabase(ctx, full); err != nil {
		env.printer.Failf("Database sync failed%s", failureHint(err))
		return nil
	}

	env.printer.Successf("Database synced successfully")
	return nil
}
