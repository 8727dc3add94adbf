package ports

import "context"

// VirtualEnv defines the interface for a project virtual environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=venv.go -destination=mocks/mock_venv.go -package=mocks
type VirtualEnv interface {
	// Create creates the virtual environment. When clear is true any
	// existing environment is removed first.
	Create(ctx context.Context, clear bool) error

	// Pip runs a pip command within the environment and returns its exit code.
	Pip(ctx context.Context, args []string) (int, error)

	// Run executes an arbitrary command within the environment, as if it had
	// been activated, and returns the command's exit code.
	Run(ctx context.Context, args []string, capture bool) (int, error)
}

// EnvFactory creates the virtual environment implementation for the current
// operating system.
type EnvFactory interface {
	// New returns a VirtualEnv rooted at dir.
	New(dir string) (VirtualEnv, error)
}
