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
	"errors"
	"fmt"

	raurerrors "github.com/GS-Works/raur/internal/errors"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

// confirmFunc answers whether a removal may proceed. It is injectable so
// handler tests run without a terminal.
type confirmFunc func(pkg string) (bool, error)

// removeCmd represents the remove command
func newRemoveCommand(configPath *string) *cobra.Command {
	var purge bool

	cmd := &cobra.Command{
		Use:   "remove <package>...",
		Short: "Remove packages and their unneeded dependencies",
		Long: `Remove one or more packages. Every removal is gated behind an
interactive confirmation; anything other than y aborts with no system
change. Removal always takes unneeded dependencies along (-Rs); with
--purge configuration files go too (-Rns).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv(*configPath)
			if err != nil {
				return err
			}

			for _, pkg := range args {
				if err := removeOne(cmd.Context(), env, pkg, purge, promptConfirm); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&purge, "purge", false, "Also remove configuration files (-Rns)")

	return cmd
}

// promptConfirm asks on the terminal. Only an explicit y/Y proceeds; a
// declined prompt is a normal outcome, an unreadable stdin is fatal.
func promptConfirm(pkg string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("Are you sure you want to remove '%s'", pkg),
		IsConfirm: true,
	}

	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, fmt.Errorf("%v: %w", err, raurerrors.ErrInputAborted)
	}
	return true, nil
}

// removeOne removes a single package behind the confirmation gate.
func removeOne(ctx context.Context, env *appEnv, pkg string, purge bool, confirm confirmFunc) error {
	ok, err := confirm(pkg)
	if err != nil {
		return err
	}
	if !ok {
		env.printer.Infof("Aborted")
		return nil
	}

	if err := env.pac.Remove(ctx, pkg, purge); err != nil {
		env.printer.Failf("Failed to remove '%s'%s", env.printer.Red(pkg), failureHint(err))
		return nil
	}

	env.printer.Successf("Removed '%s'", env.printer.Green(pkg))
	return nil
}
