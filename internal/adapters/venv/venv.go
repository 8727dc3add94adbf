// Package venv implements virtual environment provisioning.
package venv

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/stager/internal/core/domain"
	"go.trai.ch/stager/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.EnvFactory = (*Factory)(nil)

// Factory creates the virtual environment implementation for the current
// operating system.
type Factory struct {
	sub    ports.Subprocess
	logger ports.Logger
}

// NewFactory creates a new Factory.
func NewFactory(sub ports.Subprocess, logger ports.Logger) *Factory {
	return &Factory{
		sub:    sub,
		logger: logger,
	}
}

// New returns a VirtualEnv rooted at dir for the current OS.
func (f *Factory) New(dir string) (ports.VirtualEnv, error) {
	switch runtime.GOOS {
	case "linux", "darwin":
		return newUnixEnv(dir, f.sub), nil
	case "windows":
		return newWindowsEnv(dir, f.sub), nil
	default:
		return nil, zerr.With(domain.ErrUnsupportedOS, "os", runtime.GOOS)
	}
}

// environ returns the process environment with the environment's binary
// directory prepended to PATH and VIRTUAL_ENV set, so commands behave as if
// the environment had been activated.
func environ(venvDir, binDir string) []string {
	env := os.Environ()
	result := make([]string, 0, len(env)+1)
	for _, entry := range env {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if k == "PATH" {
			v = binDir + string(os.PathListSeparator) + v
		}
		result = append(result, k+"="+v)
	}
	abs, err := filepath.Abs(venvDir)
	if err != nil {
		abs = venvDir
	}
	return append(result, "VIRTUAL_ENV="+abs)
}
