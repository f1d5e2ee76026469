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

package pacman

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner is the typed abstraction over external command invocation. Every
// subprocess raur starts (pacman, sudo, git, makepkg) goes through it, so
// handlers can be unit-tested against a mock implementation.
type Runner interface {
	// Capture runs a command and returns its standard output. A non-zero
	// exit is reported as an *ExitError carrying the exit code and any
	// stderr text; failure to start the command is reported as-is.
	Capture(ctx context.Context, name string, args ...string) (string, error)

	// Show runs a command wired to the calling terminal (stdin included,
	// so privilege escalation can prompt for a password). dir, when
	// non-empty, is the working directory.
	Show(ctx context.Context, dir, name string, args ...string) error
}

// ExitError reports a command that started but exited non-zero.
type ExitError struct {
	Code   int
	Stderr string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if s := strings.TrimSpace(e.Stderr); s != "" {
		return fmt.Sprintf("exit status %d: %s", e.Code, s)
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExecRunner implements Runner on top of os/exec. There are no timeouts:
// once a command is started we wait for it, however long it takes.
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Capture implements Runner.
func (r *ExecRunner) Capture(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- command names come from config, args from CLI input

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.String(), &ExitError{
				Code:   exitErr.ExitCode(),
				Stderr: stderr.String(),
			}
		}
		return "", err
	}

	return stdout.String(), nil
}

// Show implements Runner.
func (r *ExecRunner) Show(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- command names come from config, args from CLI input
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// stderr already reached the terminal
			return &ExitError{Code: exitErr.ExitCode()}
		}
		return err
	}

	return nil
}
