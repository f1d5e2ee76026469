package main

import (
	"bytes"
	"io"

	"github.com/GS-Works/raur/internal/aur"
	"github.com/GS-Works/raur/internal/config"
	"github.com/GS-Works/raur/internal/output"
	"github.com/GS-Works/raur/internal/pacman"
)

// newTestEnv wires an appEnv from mocks. All terminal output lands in the
// returned buffer, with color off so assertions match plain text.
func newTestEnv(runner *pacman.MockRunner, client aur.Client) (*appEnv, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig()

	return &appEnv{
		cfg:     cfg,
		runner:  runner,
		pac:     pacman.New(cfg.Pacman, runner),
		aur:     client,
		printer: output.NewColorPrinter(&buf, false),
		stdout:  &buf,
		stderr:  io.Discard,
	}, &buf
}
