package ports

import (
	"context"
	"io"
)

// Telemetry records stage execution progress.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts recording a new vertex for the named stage.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded stage.
type Vertex interface {
	// Stdout returns a writer capturing the stage's standard output.
	Stdout() io.Writer

	// Stderr returns a writer capturing the stage's error output.
	Stderr() io.Writer

	// Cached marks the vertex as a cache hit.
	Cached()

	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)
}
