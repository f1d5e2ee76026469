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
	"io"
	"os"

	"github.com/GS-Works/raur/internal/aur"
	"github.com/GS-Works/raur/internal/cmderror"
	"github.com/GS-Works/raur/internal/config"
	"github.com/GS-Works/raur/internal/output"
	"github.com/GS-Works/raur/internal/pacman"
)

// appEnv bundles the collaborators the handlers operate on. Every external
// effect goes through one of these, so tests swap in mocks and buffers.
type appEnv struct {
	cfg     *config.Config
	runner  pacman.Runner
	pac     *pacman.Pacman
	aur     aur.Client
	printer *output.Printer
	stdout  io.Writer
	stderr  io.Writer
}

// newAppEnv loads and validates configuration, then wires the real
// collaborators: an exec-backed runner and the AUR RPC client.
func newAppEnv(configPath string) (*appEnv, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	runner := pacman.NewExecRunner()

	return &appEnv{
		cfg:     cfg,
		runner:  runner,
		pac:     pacman.New(cfg.Pacman, runner),
		aur:     aur.NewRPCClient(cfg.AUR.RPCEndpoint),
		printer: output.NewPrinter(os.Stdout),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}, nil
}

var failureInspector = cmderror.NewErrorChainInspector(cmderror.NewInspector())

// failureHint classifies a reported subprocess failure into a short hint
// appended to the failure line. An empty string means no classification.
func failureHint(err error) string {
	switch {
	case failureInspector.IsNetworkError(err):
		return " (network unreachable)"
	case failureInspector.IsPermissionError(err):
		return " (insufficient privileges)"
	case failureInspector.IsNotFoundError(err):
		return " (not found)"
	}
	return ""
}
