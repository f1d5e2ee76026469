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

// Package main implements the raur command-line interface, a helper that
// unifies the official pacman repositories and the AUR behind one tool.
//
// The CLI supports:
//   - Searching both package sources, with per-source filters
//   - Installing from the official repositories, falling back to an AUR
//     clone-and-build when a package is not packaged officially
//   - Removing packages behind an interactive confirmation gate
//   - Syncing the package databases and upgrading the system
//
// Usage:
//
//	raur search <query> [--pacman-only|--aur-only|--json]
//	raur install <package>... [-c]
//	raur remove <package>... [--purge]
//	raur update [-y]
//	raur upgrade [-y]
//
// Exit codes:
//   - 0: Success (including reported pacman/git/makepkg failures)
//   - 1: General error
//   - 3: Network error
//
// A failing subprocess is printed as a failure line and does not change the
// exit code; only parse errors and fatal I/O unwind the process.
package main
