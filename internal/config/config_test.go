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

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Pacman.Binary != "pacman" {
		t.Errorf("Pacman.Binary = %q, want %q", cfg.Pacman.Binary, "pacman")
	}
	if cfg.Pacman.Escalate != "sudo" {
		t.Errorf("Pacman.Escalate = %q, want %q", cfg.Pacman.Escalate, "sudo")
	}
	if !strings.HasPrefix(cfg.AUR.RPCEndpoint, "https://aur.archlinux.org/rpc/") {
		t.Errorf("AUR.RPCEndpoint = %q, want the public AUR RPC", cfg.AUR.RPCEndpoint)
	}
	if !strings.HasSuffix(cfg.Cache.Dir, filepath.Join(".cache", "raur")) {
		t.Errorf("Cache.Dir = %q, want a .cache/raur path", cfg.Cache.Dir)
	}
	if cfg.Search.Limit != 10 {
		t.Errorf("Search.Limit = %d, want 10", cfg.Search.Limit)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestDefaultCacheDirFallsBackToTmp(t *testing.T) {
	t.Setenv("HOME", "")

	cfg := DefaultConfig()
	want := filepath.Join("/tmp", ".cache", "raur")
	if cfg.Cache.Dir != want {
		t.Errorf("Cache.Dir = %q, want %q", cfg.Cache.Dir, want)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
pacman:
  binary: pacman
  escalate: doas
aur:
  rpc_endpoint: https://example.test/rpc?arg=
cache:
  dir: /var/tmp/raur-test
search:
  limit: 5
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Pacman.Escalate != "doas" {
		t.Errorf("Pacman.Escalate = %q, want %q", cfg.Pacman.Escalate, "doas")
	}
	if cfg.AUR.RPCEndpoint != "https://example.test/rpc?arg=" {
		t.Errorf("AUR.RPCEndpoint = %q, want the file value", cfg.AUR.RPCEndpoint)
	}
	if cfg.Cache.Dir != "/var/tmp/raur-test" {
		t.Errorf("Cache.Dir = %q, want %q", cfg.Cache.Dir, "/var/tmp/raur-test")
	}
	if cfg.Search.Limit != 5 {
		t.Errorf("Search.Limit = %d, want 5", cfg.Search.Limit)
	}
	// Unset file fields keep their defaults
	if cfg.AUR.CloneURLTemplate != "https://aur.archlinux.org/%s.git" {
		t.Errorf("CloneURLTemplate = %q, want the default", cfg.AUR.CloneURLTemplate)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("RAUR_CACHE_DIR", "/tmp/raur-env")
	t.Setenv("RAUR_PACMAN_BIN", "pacman-static")
	t.Setenv("RAUR_AUR_RPC_ENDPOINT", "http://127.0.0.1:9999/rpc?arg=")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Cache.Dir != "/tmp/raur-env" {
		t.Errorf("Cache.Dir = %q, want env value", cfg.Cache.Dir)
	}
	if cfg.Pacman.Binary != "pacman-static" {
		t.Errorf("Pacman.Binary = %q, want env value", cfg.Pacman.Binary)
	}
	if cfg.AUR.RPCEndpoint != "http://127.0.0.1:9999/rpc?arg=" {
		t.Errorf("AUR.RPCEndpoint = %q, want env value", cfg.AUR.RPCEndpoint)
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	tests := []struct {
		in   string
		want string
	}{
		{"~/.cache/raur", "/home/tester/.cache/raur"},
		{"/absolute/path", "/absolute/path"},
		{"$HOME/cache", "/home/tester/cache"},
	}

	for _, tt := range tests {
		if got := expandPath(tt.in); got != tt.want {
			t.Errorf("expandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"empty pacman binary", func(c *Config) { c.Pacman.Binary = "" }, true},
		{"empty rpc endpoint", func(c *Config) { c.AUR.RPCEndpoint = "" }, true},
		{"clone template without placeholder", func(c *Config) { c.AUR.CloneURLTemplate = "https://aur.example/pkg.git" }, true},
		{"empty cache dir", func(c *Config) { c.Cache.Dir = "" }, true},
		{"zero search limit", func(c *Config) { c.Search.Limit = 0 }, true},
		{"negative search limit", func(c *Config) { c.Search.Limit = -3 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
