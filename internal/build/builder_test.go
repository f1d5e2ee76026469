package build

import (
	"context"
	"reflect"
	"testing"

	"github.com/GS-Works/raur/internal/pacman"
)

func TestCloneURL(t *testing.T) {
	b := NewBuilder(pacman.NewMockRunner(), "https://aur.archlinux.org/%s.git")
	if got, want := b.CloneURL("yay-bin"), "https://aur.archlinux.org/yay-bin.git"; got != want {
		t.Errorf("CloneURL() = %q, want %q", got, want)
	}
}

func TestClone(t *testing.T) {
	runner := pacman.NewMockRunner()
	b := NewBuilder(runner, "https://aur.archlinux.org/%s.git")

	if err := b.Clone(context.Background(), "yay-bin", "/tmp/raur/yay-bin"); err != nil {
		t.Fatalf("Clone() error = %v", err)
	}

	calls := runner.CallsTo("git")
	if len(calls) != 1 {
		t.Fatalf("expected 1 git call, got %d", len(calls))
	}
	want := []string{"clone", "https://aur.archlinux.org/yay-bin.git", "/tmp/raur/yay-bin"}
	if !reflect.DeepEqual(calls[0].Args, want) {
		t.Errorf("git args = %v, want %v", calls[0].Args, want)
	}
	if calls[0].Dir != "" {
		t.Errorf("clone dir = %q, want empty (target passed as argument)", calls[0].Dir)
	}
}

func TestBuildFlagSelection(t *testing.T) {
	tests := []struct {
		name     string
		cascade  bool
		wantArgs []string
	}{
		{"default keeps build deps", false, []string{"-si", "--noconfirm"}},
		{"cascade cleans after install", true, []string{"-sci", "--noconfirm"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := pacman.NewMockRunner()
			b := NewBuilder(runner, "https://aur.archlinux.org/%s.git")

			if err := b.Build(context.Background(), "/tmp/raur/yay-bin", tt.cascade); err != nil {
				t.Fatalf("Build() error = %v", err)
			}

			calls := runner.CallsTo("makepkg")
			if len(calls) != 1 {
				t.Fatalf("expected 1 makepkg call, got %d", len(calls))
			}
			if !reflect.DeepEqual(calls[0].Args, tt.wantArgs) {
				t.Errorf("makepkg args = %v, want %v", calls[0].Args, tt.wantArgs)
			}
			if calls[0].Dir != "/tmp/raur/yay-bin" {
				t.Errorf("makepkg dir = %q, want the workspace", calls[0].Dir)
			}
		})
	}
}

func TestBuildPropagatesFailure(t *testing.T) {
	runner := pacman.NewMockRunner()
	runner.ShowErrFor["makepkg"] = &pacman.ExitError{Code: 4}
	b := NewBuilder(runner, "https://aur.archlinux.org/%s.git")

	if err := b.Build(context.Background(), "/tmp/raur/yay-bin", false); err == nil {
		t.Error("Build() error = nil, want makepkg failure propagated")
	}
}
