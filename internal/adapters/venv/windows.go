package venv

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/stager/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VirtualEnv = (*windowsEnv)(nil)

// windowsEnv is the VirtualEnv implementation for windows.
type windowsEnv struct {
	dir string
	sub ports.Subprocess
}

func newWindowsEnv(dir string, sub ports.Subprocess) *windowsEnv {
	return &windowsEnv{
		dir: dir,
		sub: sub,
	}
}

func (e *windowsEnv) binDir() string {
	return filepath.Join(e.dir, "Scripts")
}

// Create creates the virtual environment via the system python.
func (e *windowsEnv) Create(ctx context.Context, clear bool) error {
	if clear {
		if err := os.RemoveAll(e.dir); err != nil {
			// A python.exe still running inside the environment keeps the
			// directory locked on Windows.
			return zerr.With(zerr.Wrap(err, "failed to clear virtual environment; "+
				"kill running python instances and retry"), "dir", e.dir)
		}
	}

	code, err := e.sub.Run(ctx, []string{"python", "-m", "venv", e.dir}, "", nil, true)
	if err != nil {
		return zerr.Wrap(err, "failed to create virtual environment")
	}
	if code != 0 {
		return zerr.With(zerr.New("venv creation exited non-zero"), "exit_code", code)
	}
	return nil
}

// Pip runs the environment's pip with the given arguments.
func (e *windowsEnv) Pip(ctx context.Context, args []string) (int, error) {
	argv := append([]string{filepath.Join(e.binDir(), "pip")}, args...)
	return e.sub.Run(ctx, argv, "", environ(e.dir, e.binDir()), true)
}

// Run executes a command as if the environment had been activated.
func (e *windowsEnv) Run(ctx context.Context, args []string, capture bool) (int, error) {
	return e.sub.Run(ctx, args, "", environ(e.dir, e.binDir()), capture)
}
