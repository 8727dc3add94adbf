// Package ports defines the core interfaces for the application.
package ports

import "context"

// Stage is a named, cacheable unit of work with declared file inputs and
// outputs and an executable action.
//
//go:generate go run go.uber.org/mock/mockgen -source=stage.go -destination=mocks/mock_stage.go -package=mocks
type Stage interface {
	// Name returns the stable, unique identifier of the stage.
	Name() string

	// Inputs returns the files the stage reads.
	Inputs() []string

	// Outputs returns the files the stage produces.
	Outputs() []string

	// Run performs the work and returns its exit code. The error is reserved
	// for failures that prevent the action from completing at all; a non-zero
	// exit code is a result, not an error.
	Run(ctx context.Context) (int, error)
}
