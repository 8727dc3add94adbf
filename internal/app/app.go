// Package app implements the application layer for stager.
package app

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/stager/internal/adapters/config"
	"go.trai.ch/stager/internal/adapters/state"
	"go.trai.ch/stager/internal/adapters/venv"
	"go.trai.ch/stager/internal/core/domain"
	"go.trai.ch/stager/internal/core/ports"
	"go.trai.ch/stager/internal/engine/runner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	envFactory   ports.EnvFactory
	hasher       ports.Hasher
	logger       ports.Logger
	telemetry    ports.Telemetry

	configPath string
}

// RunOptions controls a single Run invocation.
type RunOptions struct {
	// Args are forwarded to the delegate build tool when one is configured.
	Args []string
}

// CleanOptions controls what Clean removes.
type CleanOptions struct {
	// All removes the virtual environment in addition to the run records.
	All bool
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	envFactory ports.EnvFactory,
	hasher ports.Hasher,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		envFactory:   envFactory,
		hasher:       hasher,
		logger:       logger,
		telemetry:    telemetry,
	}
}

// SetConfigPath overrides the configuration file location.
func (a *App) SetConfigPath(path string) {
	a.configPath = path
}

// Run provisions the virtual environment behind the run-record cache and,
// when a delegate build tool is configured and arguments were given, hands
// them off to it inside the environment.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	cfg, env, err := a.setup()
	if err != nil {
		return err
	}

	store := state.NewStore(cfg.CacheDir)
	run := runner.New(a.hasher, store, a.logger, a.telemetry)

	stage := venv.NewStage(cfg, env, a.logger)
	code, err := run.Execute(ctx, stage)
	if err != nil {
		return err
	}
	if code != 0 {
		return zerr.With(domain.ErrStageFailed, "stage", stage.Name())
	}

	return a.delegate(ctx, cfg, env, opts.Args)
}

// delegate runs the configured build tool when its marker file exists in
// the project root. Without arguments there is nothing to forward, so
// provisioning alone was the whole job.
func (a *App) delegate(ctx context.Context, cfg *domain.Config, env ports.VirtualEnv, args []string) error {
	if len(args) == 0 || cfg.Delegate.Marker == "" {
		return nil
	}
	if _, err := os.Stat(cfg.Delegate.Marker); err != nil {
		return nil
	}

	argv := append(append([]string{}, cfg.Delegate.Cmd...), args...)
	a.logger.Info(fmt.Sprintf("delegating to %v", argv))

	code, err := env.Run(ctx, argv, false)
	if err != nil {
		return zerr.Wrap(err, "delegate execution failed")
	}
	if code != 0 {
		return zerr.With(domain.ErrStageFailed, "stage", "delegate")
	}
	return nil
}

// Clean removes the persisted run records so the next run starts from a
// clean slate. With All it also deletes the virtual environment itself.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	record := state.NewStore(cfg.CacheDir).Path(venv.StageName)
	if err := os.Remove(record); err != nil && !os.IsNotExist(err) {
		return zerr.Wrap(err, "failed to remove run record")
	}
	a.logger.Info(fmt.Sprintf("removed run record %s", record))

	if opts.All {
		if err := os.RemoveAll(cfg.VenvDir); err != nil {
			return zerr.Wrap(err, "failed to remove virtual environment")
		}
		a.logger.Info(fmt.Sprintf("removed virtual environment %s", cfg.VenvDir))
	}
	return nil
}

func (a *App) setup() (*domain.Config, ports.VirtualEnv, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	env, err := a.envFactory.New(cfg.VenvDir)
	if err != nil {
		return nil, nil, err
	}
	return cfg, env, nil
}

func (a *App) loadConfig() (*domain.Config, error) {
	path := a.configPath
	if path == "" {
		path = config.DefaultFilename
	}

	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}
