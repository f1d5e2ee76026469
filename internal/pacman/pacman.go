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

// Package pacman wraps the system package manager behind a small typed
// surface. Operations that modify the system run behind the configured
// privilege escalation wrapper and pass --noconfirm; read-only operations
// run as the invoking user.
package pacman

import (
	"context"
	"errors"

	"github.com/GS-Works/raur/internal/config"
)

// Pacman drives the system package manager through a Runner.
type Pacman struct {
	runner   Runner
	bin      string
	escalate string
}

// New creates a Pacman bound to the given runner and configuration.
func New(cfg config.PacmanConfig, runner Runner) *Pacman {
	return &Pacman{
		runner:   runner,
		bin:      cfg.Binary,
		escalate: cfg.Escalate,
	}
}

// Search runs the repository search for query and returns raw stdout.
// pacman exits non-zero when nothing matches; that is an empty result,
// not an error. Only failure to start the search is reported.
func (p *Pacman) Search(ctx context.Context, query string) (string, error) {
	out, err := p.runner.Capture(ctx, p.bin, "-Ss", query)
	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return out, nil
		}
		return "", err
	}
	return out, nil
}

// Install installs a single package from the official repositories.
func (p *Pacman) Install(ctx context.Context, pkg string) error {
	return p.elevated(ctx, "-S", pkg, "--noconfirm")
}

// Remove removes a single package together with its unneeded dependencies.
// With purge, configuration files are removed as well (-Rns vs -Rs).
func (p *Pacman) Remove(ctx context.Context, pkg string, purge bool) error {
	flag := "-Rs"
	if purge {
		flag = "-Rns"
	}
	return p.elevated(ctx, flag, pkg, "--noconfirm")
}

// SyncDatabase refreshes the package databases. force refreshes even when
// they appear up to date (-Syy vs -Sy).
func (p *Pacman) SyncDatabase(ctx context.Context, force bool) error {
	flag := "-Sy"
	if force {
		flag = "-Syy"
	}
	return p.elevated(ctx, flag)
}

// UpgradeSystem performs the combined sync and full system upgrade.
func (p *Pacman) UpgradeSystem(ctx context.Context) error {
	return p.elevated(ctx, "-Syu", "--noconfirm")
}

// elevated runs the package manager behind the escalation wrapper, wired to
// the terminal so the wrapper can prompt for credentials.
func (p *Pacman) elevated(ctx context.Context, args ...string) error {
	if p.escalate == "" {
		return p.runner.Show(ctx, "", p.bin, args...)
	}
	return p.runner.Show(ctx, "", p.escalate, append([]string{p.bin}, args...)...)
}
