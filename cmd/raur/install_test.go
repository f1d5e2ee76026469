package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GS-Works/raur/internal/aur"
	"github.com/GS-Works/raur/internal/build"
	raurerrors "github.com/GS-Works/raur/internal/errors"
	"github.com/GS-Works/raur/internal/pacman"
)

func installFixtures(t *testing.T, runner *pacman.MockRunner) (*appEnv, *build.Workspace, *build.Builder) {
	t.Helper()

	env, _ := newTestEnv(runner, aur.NewMockClient())
	env.cfg.Cache.Dir = filepath.Join(t.TempDir(), "raur")

	ws := build.NewWorkspace(env.cfg.Cache.Dir)
	builder := build.NewBuilder(env.runner, env.cfg.AUR.CloneURLTemplate)
	return env, ws, builder
}

func TestInstallOfficialHitNeverBuilds(t *testing.T) {
	runner := pacman.NewMockRunner()
	runner.CaptureOutput = "extra/htop 3.3.0-1\n    Interactive process viewer\n"

	env, ws, builder := installFixtures(t, runner)
	if err := installOne(context.Background(), env, ws, builder, "htop", false); err != nil {
		t.Fatalf("installOne() error = %v", err)
	}

	// The AUR pipeline must not be touched at all
	if calls := runner.CallsTo("git"); len(calls) != 0 {
		t.Errorf("git invoked %d times for an official package", len(calls))
	}
	if calls := runner.CallsTo("makepkg"); len(calls) != 0 {
		t.Errorf("makepkg invoked %d times for an official package", len(calls))
	}

	sudo := runner.CallsTo("sudo")
	if len(sudo) != 1 {
		t.Fatalf("expected 1 sudo call, got %d", len(sudo))
	}
	want := []string{"pacman", "-S", "htop", "--noconfirm"}
	if strings.Join(sudo[0].Args, " ") != strings.Join(want, " ") {
		t.Errorf("install args = %v, want %v", sudo[0].Args, want)
	}
}

func TestInstallOfficialFailureIsReportedNotFatal(t *testing.T) {
	runner := pacman.NewMockRunner()
	runner.CaptureOutput = "extra/htop 3.3.0-1\n"
	runner.ShowErrFor["sudo"] = &pacman.ExitError{Code: 1}

	env, ws, builder := installFixtures(t, runner)
	if err := installOne(context.Background(), env, ws, builder, "htop", false); err != nil {
		t.Fatalf("installOne() error = %v, want reported failure", err)
	}
}

func TestInstallFallsBackToAUR(t *testing.T) {
	runner := pacman.NewMockRunner() // empty search output: not official

	env, ws, builder := installFixtures(t, runner)
	if err := installOne(context.Background(), env, ws, builder, "yay-bin", true); err != nil {
		t.Fatalf("installOne() error = %v", err)
	}

	git := runner.CallsTo("git")
	if len(git) != 1 {
		t.Fatalf("expected 1 git call, got %d", len(git))
	}
	wantURL := "https://aur.archlinux.org/yay-bin.git"
	if git[0].Args[1] != wantURL {
		t.Errorf("clone URL = %q, want %q", git[0].Args[1], wantURL)
	}

	mk := runner.CallsTo("makepkg")
	if len(mk) != 1 {
		t.Fatalf("expected 1 makepkg call, got %d", len(mk))
	}
	if mk[0].Args[0] != "-sci" {
		t.Errorf("cascade makepkg flag = %q, want -sci", mk[0].Args[0])
	}
	if mk[0].Dir != filepath.Join(env.cfg.Cache.Dir, "yay-bin") {
		t.Errorf("makepkg dir = %q, want the workspace", mk[0].Dir)
	}
}

func TestInstallWithoutCascadeKeepsBuildDeps(t *testing.T) {
	runner := pacman.NewMockRunner()

	env, ws, builder := installFixtures(t, runner)
	if err := installOne(context.Background(), env, ws, builder, "yay-bin", false); err != nil {
		t.Fatalf("installOne() error = %v", err)
	}

	mk := runner.CallsTo("makepkg")
	if len(mk) != 1 || mk[0].Args[0] != "-si" {
		t.Errorf("makepkg calls = %v, want one -si invocation", mk)
	}
}

func TestInstallResetsStaleWorkspace(t *testing.T) {
	runner := pacman.NewMockRunner()

	env, ws, builder := installFixtures(t, runner)

	// Leave debris from a previous attempt in the workspace
	stale := filepath.Join(env.cfg.Cache.Dir, "yay-bin")
	if err := os.MkdirAll(stale, 0o755); err != nil {
		t.Fatal(err)
	}
	marker := filepath.Join(stale, "leftover.pkg.tar.zst")
	if err := os.WriteFile(marker, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := installOne(context.Background(), env, ws, builder, "yay-bin", false); err != nil {
		t.Fatalf("installOne() error = %v", err)
	}

	if _, err := os.Stat(marker); !os.IsNotExist(err) {
		t.Errorf("stale file survived the reset, stat err = %v", err)
	}
}

func TestInstallCloneFailureSkipsBuild(t *testing.T) {
	runner := pacman.NewMockRunner()
	runner.ShowErrFor["git"] = &pacman.ExitError{Code: 128, Stderr: "fatal: repository not found"}

	env, ws, builder := installFixtures(t, runner)
	err := installOne(context.Background(), env, ws, builder, "no-such-aur-pkg", false)
	if err != nil {
		t.Fatalf("installOne() error = %v, want clone failure reported, not fatal", err)
	}

	if calls := runner.CallsTo("makepkg"); len(calls) != 0 {
		t.Errorf("makepkg invoked after a failed clone")
	}
}

func TestInstallBuildFailureIsReportedNotFatal(t *testing.T) {
	runner := pacman.NewMockRunner()
	runner.ShowErrFor["makepkg"] = &pacman.ExitError{Code: 4}

	env, ws, builder := installFixtures(t, runner)
	if err := installOne(context.Background(), env, ws, builder, "yay-bin", false); err != nil {
		t.Fatalf("installOne() error = %v, want build failure reported, not fatal", err)
	}
}

func TestInstallWorkspaceFailureIsFatal(t *testing.T) {
	runner := pacman.NewMockRunner()
	env, _, builder := installFixtures(t, runner)

	// A cache root colliding with a file cannot be created
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	ws := build.NewWorkspace(filepath.Join(blocker, "raur"))

	err := installOne(context.Background(), env, ws, builder, "yay-bin", false)
	if !errors.Is(err, raurerrors.ErrWorkspace) {
		t.Errorf("installOne() error = %v, want ErrWorkspace", err)
	}
}

func TestInstallSearchStartFailureIsFatal(t *testing.T) {
	runner := pacman.NewMockRunner()
	runner.CaptureErr = errors.New(`exec: "pacman": executable file not found in $PATH`)

	env, ws, builder := installFixtures(t, runner)
	if err := installOne(context.Background(), env, ws, builder, "htop", false); err == nil {
		t.Error("installOne() error = nil, want search start failure propagated")
	}
}
