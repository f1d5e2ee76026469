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

// Package config provides configuration management for raur with support
// for multiple configuration sources and a well-defined precedence order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Environment variables
//  2. Configuration file
//  3. Built-in defaults
//
// The package supports YAML configuration files and provides automatic
// discovery of configuration in standard locations.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from multiple sources and applies them in the
// correct precedence order. If configPath is provided, it loads from that
// specific file. Otherwise, it searches standard locations:
//   - .raur.yaml (current directory)
//   - .raur.yml (current directory)
//   - ~/.config/raur/config.yaml
//
// Environment variables are applied after loading the config file, allowing
// runtime overrides. Path expansion (~ and environment variables) is
// performed on the cache directory.
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func Load(configPath string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		// Try default locations
		defaultPaths := []string{
			".raur.yaml",
			".raur.yml",
			filepath.Join(os.Getenv("HOME"), ".config", "raur", "config.yaml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Expand paths
	cfg.Cache.Dir = expandPath(cfg.Cache.Dir)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if endpoint := os.Getenv("RAUR_AUR_RPC_ENDPOINT"); endpoint != "" {
		cfg.AUR.RPCEndpoint = endpoint
	}
	if tmpl := os.Getenv("RAUR_AUR_CLONE_URL"); tmpl != "" {
		cfg.AUR.CloneURLTemplate = tmpl
	}
	if dir := os.Getenv("RAUR_CACHE_DIR"); dir != "" {
		cfg.Cache.Dir = dir
	}
	if bin := os.Getenv("RAUR_PACMAN_BIN"); bin != "" {
		cfg.Pacman.Binary = bin
	}
	if bin := os.Getenv("RAUR_ESCALATE_BIN"); bin != "" {
		cfg.Pacman.Escalate = bin
	}
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			home = "/tmp"
		}
		path = filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

// Validate checks if the configuration contains valid values. This should
// be called after loading configuration to catch invalid settings early.
func (c *Config) Validate() error {
	if c.Pacman.Binary == "" {
		return fmt.Errorf("pacman binary cannot be empty")
	}
	if c.AUR.RPCEndpoint == "" {
		return fmt.Errorf("AUR RPC endpoint cannot be empty")
	}
	if c.AUR.CloneURLTemplate == "" {
		return fmt.Errorf("AUR clone URL template cannot be empty")
	}
	if !strings.Contains(c.AUR.CloneURLTemplate, "%s") {
		return fmt.Errorf("AUR clone URL template must contain a %%s placeholder, got: %s", c.AUR.CloneURLTemplate)
	}
	if c.Cache.Dir == "" {
		return fmt.Errorf("cache directory cannot be empty")
	}
	if c.Search.Limit <= 0 {
		return fmt.Errorf("search limit must be positive, got: %d", c.Search.Limit)
	}
	return nil
}
