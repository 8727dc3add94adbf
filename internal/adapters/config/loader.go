// Package config provides the configuration loader for stager.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/stager/internal/core/domain"
	"go.trai.ch/stager/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file stager looks for in the
// project root.
const DefaultFilename = "stager.yaml"

var _ ports.ConfigLoader = (*FileLoader)(nil)

// FileLoader implements ports.ConfigLoader using a YAML file.
type FileLoader struct{}

// NewLoader creates a new FileLoader.
func NewLoader() *FileLoader {
	return &FileLoader{}
}

// Load reads the configuration file at path. A missing file yields the
// default configuration, matching the original behavior of a fully
// hardcoded bootstrap.
func (l *FileLoader) Load(path string) (*domain.Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file Stagerfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	if file.PackageManager != "" {
		cfg.PackageManager = file.PackageManager
	}
	if file.VenvDir != "" {
		cfg.VenvDir = file.VenvDir
	}
	if file.CacheDir != "" {
		cfg.CacheDir = file.CacheDir
	} else {
		// Run records live next to the environment unless told otherwise.
		cfg.CacheDir = cfg.VenvDir
	}
	if len(file.Manifests) > 0 {
		cfg.Manifests = file.Manifests
	}
	if file.Delegate.Marker != "" {
		cfg.Delegate.Marker = file.Delegate.Marker
	}
	if len(file.Delegate.Cmd) > 0 {
		cfg.Delegate.Cmd = file.Delegate.Cmd
	}

	// Fail early on a spec the stage could not act on.
	if _, err := cfg.PackageManagerName(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *domain.Config {
	return &domain.Config{
		PackageManager: "poetry>=1.6.1",
		VenvDir:        ".venv",
		CacheDir:       ".venv",
		Manifests:      []string{DefaultFilename, "poetry.lock", "poetry.toml", "pyproject.toml"},
		Delegate: domain.Delegate{
			Marker: "yanga.yaml",
			Cmd:    []string{"yanga", "build"},
		},
	}
}
