package venv

import (
	"context"
	"os"

	"go.trai.ch/stager/internal/core/domain"
	"go.trai.ch/stager/internal/core/ports"
	"go.trai.ch/zerr"
)

// StageName identifies the provisioning stage.
const StageName = "create-virtual-environment"

var _ ports.Stage = (*Stage)(nil)

// Stage provisions the virtual environment and its package manager. It is
// the cacheable unit of work the runner gates: its inputs are the project
// manifests, so the whole provisioning is skipped when none of them changed.
type Stage struct {
	cfg    *domain.Config
	env    ports.VirtualEnv
	logger ports.Logger
}

// NewStage creates the provisioning stage.
func NewStage(cfg *domain.Config, env ports.VirtualEnv, logger ports.Logger) *Stage {
	return &Stage{
		cfg:    cfg,
		env:    env,
		logger: logger,
	}
}

// Name returns the stable identifier of the stage.
func (s *Stage) Name() string {
	return StageName
}

// Inputs returns the manifest files that exist in the project root. Missing
// manifests are not declared, so their later appearance does not fail
// hashing.
func (s *Stage) Inputs() []string {
	var inputs []string
	for _, path := range s.cfg.Manifests {
		if _, err := os.Stat(path); err == nil {
			inputs = append(inputs, path)
		}
	}
	return inputs
}

// Outputs returns nil; the environment itself is not content-addressed.
func (s *Stage) Outputs() []string {
	return nil
}

// Run creates the environment, installs the package manager, and runs its
// install command. The first non-zero exit code stops the stage and becomes
// its result.
func (s *Stage) Run(ctx context.Context) (int, error) {
	s.logger.Info("environment fingerprint: " + Fingerprint(os.Environ()))

	clear := false
	if _, err := os.Stat(s.cfg.VenvDir); err == nil {
		clear = true
	}

	if err := s.env.Create(ctx, clear); err != nil {
		return 0, zerr.Wrap(err, "failed to create virtual environment")
	}

	code, err := s.env.Pip(ctx, []string{"install", s.cfg.PackageManager})
	if err != nil || code != 0 {
		return code, err
	}

	name, err := s.cfg.PackageManagerName()
	if err != nil {
		return 0, err
	}

	return s.env.Run(ctx, []string{name, "install"}, true)
}
