// Package shell provides the subprocess adapter.
package shell

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/stager/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Subprocess = (*Executor)(nil)

// Executor implements ports.Subprocess using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Run executes argv in dir with the given environment and returns the
// command's exit code. A nil env inherits the process environment.
//
// When capture is true both output streams are scanned concurrently and
// forwarded line-wise to the logger; otherwise they are connected to the
// terminal.
func (e *Executor) Run(ctx context.Context, argv []string, dir string, env []string, capture bool) (int, error) {
	if len(argv) == 0 {
		return -1, zerr.New("empty command")
	}

	e.logger.Info("running command: " + strings.Join(argv, " "))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // caller provides the command
	cmd.Dir = dir
	if env != nil {
		cmd.Env = env
	} else {
		cmd.Env = os.Environ()
	}

	var err error
	if capture {
		err = e.runCaptured(cmd)
	} else {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		err = cmd.Run()
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Non-zero exit is a result, not an error.
			return exitErr.ExitCode(), nil
		}
		return -1, zerr.With(zerr.Wrap(err, "command failed to run"), "command", argv[0])
	}

	return 0, nil
}

// runCaptured starts the command and pumps both pipes into the logger until
// the command exits.
func (e *Executor) runCaptured(cmd *exec.Cmd) error {
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open stdout pipe")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open stderr pipe")
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	var g errgroup.Group
	g.Go(func() error {
		return e.pump(stdout, e.logger.Info)
	})
	g.Go(func() error {
		return e.pump(stderr, e.logger.Warn)
	})

	// The pipes must be drained before Wait closes them.
	pumpErr := g.Wait()
	if err := cmd.Wait(); err != nil {
		return err
	}
	return pumpErr
}

func (e *Executor) pump(r io.Reader, sink func(string)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		sink(scanner.Text())
	}
	return scanner.Err()
}
