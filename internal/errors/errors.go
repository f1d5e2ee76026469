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

// Package errors defines sentinel errors for consistent error handling across
// the application. These errors map to specific exit codes in the CLI for
// proper scripting support.
//
// Only fatal conditions get a sentinel: a failing pacman, git, or makepkg
// invocation is reported to the user and never surfaces here.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrNetworkFailure indicates the AUR RPC endpoint could not be reached.
	// Maps to exit code 3.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrMalformedResponse indicates the AUR RPC returned a body that does
	// not decode as the expected JSON envelope.
	// Maps to exit code 1.
	ErrMalformedResponse = errors.New("malformed AUR response")

	// ErrWorkspace indicates a filesystem failure while preparing or
	// resetting a package build workspace.
	// Maps to exit code 1.
	ErrWorkspace = errors.New("workspace setup failed")

	// ErrInputAborted indicates standard input could not be read while
	// waiting for an interactive confirmation.
	// Maps to exit code 1.
	ErrInputAborted = errors.New("could not read confirmation input")
)
