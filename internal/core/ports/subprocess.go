package ports

import "context"

// Subprocess defines the interface for running external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=subprocess.go -destination=mocks/mock_subprocess.go -package=mocks
type Subprocess interface {
	// Run executes argv in dir with the given environment and returns the
	// command's exit code. A nil env inherits the process environment. When
	// capture is true, stdout and stderr are streamed to the logger instead
	// of the terminal.
	//
	// A non-zero exit code is returned without an error; the error is
	// reserved for commands that could not be started or were interrupted.
	Run(ctx context.Context, argv []string, dir string, env []string, capture bool) (int, error)
}
