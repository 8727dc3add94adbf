package domain

import "go.trai.ch/zerr"

var (
	// ErrCorruptRecord is returned when a persisted run record cannot be parsed.
	ErrCorruptRecord = zerr.New("corrupt run record")

	// ErrUnsupportedOS is returned when no virtual environment implementation
	// exists for the current operating system.
	ErrUnsupportedOS = zerr.New("unsupported operating system")

	// ErrInvalidPackageManager is returned when the package manager name cannot
	// be extracted from the configured requirement spec.
	ErrInvalidPackageManager = zerr.New("invalid package manager spec")

	// ErrStageFailed is returned when a stage's action finishes with a
	// non-zero exit code.
	ErrStageFailed = zerr.New("stage execution failed")
)
