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

// Package config types define the configuration structures used throughout
// raur. These types represent settings that can be loaded from YAML
// configuration files or environment variables.
package config

import (
	"os"
	"path/filepath"
)

// Config represents the complete configuration for raur. It consolidates
// settings from various sources and provides a unified interface for
// accessing configuration values throughout the application.
type Config struct {
	Pacman PacmanConfig `yaml:"pacman"`
	AUR    AURConfig    `yaml:"aur"`
	Cache  CacheConfig  `yaml:"cache"`
	Search SearchConfig `yaml:"search"`
}

// PacmanConfig names the system package manager binary and the privilege
// escalation wrapper placed in front of operations that modify the system.
type PacmanConfig struct {
	Binary   string `yaml:"binary"`
	Escalate string `yaml:"escalate"`
}

// AURConfig contains the AUR endpoints. RPCEndpoint is the search URL the
// query is appended to verbatim; CloneURLTemplate receives the package name
// via fmt.Sprintf.
type AURConfig struct {
	RPCEndpoint      string `yaml:"rpc_endpoint"`
	CloneURLTemplate string `yaml:"clone_url_template"`
}

// CacheConfig controls where per-package build workspaces are created.
type CacheConfig struct {
	Dir string `yaml:"dir"`
}

// SearchConfig controls how much of each search leg is rendered.
type SearchConfig struct {
	Limit int `yaml:"limit"`
}

// DefaultConfig returns a Config with defaults suitable for a stock Arch
// install: pacman behind sudo, the public AUR endpoints, and a cache under
// the user's home directory, falling back to /tmp when HOME is unset.
func DefaultConfig() *Config {
	home := os.Getenv("HOME")
	if home == "" {
		home = "/tmp"
	}

	return &Config{
		Pacman: PacmanConfig{
			Binary:   "pacman",
			Escalate: "sudo",
		},
		AUR: AURConfig{
			RPCEndpoint:      "https://aur.archlinux.org/rpc/?v=5&type=search&arg=",
			CloneURLTemplate: "https://aur.archlinux.org/%s.git",
		},
		Cache: CacheConfig{
			Dir: filepath.Join(home, ".cache", "raur"),
		},
		Search: SearchConfig{
			Limit: 10,
		},
	}
}
