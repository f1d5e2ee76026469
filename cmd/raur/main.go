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
	"errors"
	"fmt"
	"os"

	raurerrors "github.com/GS-Works/raur/internal/errors"
	"github.com/spf13/cobra"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	rootCmd := newRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "raur",
		Short: "AUR + pacman helper",
		Long: `raur unifies the official pacman repositories and the Arch User
Repository behind one command. Official packages are handled by the system
package manager; AUR packages are searched over the RPC endpoint and built
locally from their cloned recipe.`,
		Version:       version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")

	rootCmd.AddCommand(newSearchCommand(&configPath))
	rootCmd.AddCommand(newInstallCommand(&configPath))
	rootCmd.AddCommand(newRemoveCommand(&configPath))
	rootCmd.AddCommand(newUpdateCommand(&configPath))
	rootCmd.AddCommand(newUpgradeCommand(&configPath))

	return rootCmd
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, raurerrors.ErrNetworkFailure) {
		return 3 // Network errors
	}

	return 1 // General error
}
