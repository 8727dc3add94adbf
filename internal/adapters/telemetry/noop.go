// Package telemetry provides stage progress recording adapters.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/stager/internal/core/ports"
)

var _ ports.Telemetry = (*NoOp)(nil)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a no-op vertex.
func (t *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, &NoOpVertex{}
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Stdout returns a writer that discards everything.
func (v *NoOpVertex) Stdout() io.Writer { return io.Discard }

// Stderr returns a writer that discards everything.
func (v *NoOpVertex) Stderr() io.Writer { return io.Discard }

// Cached does nothing.
func (v *NoOpVertex) Cached() {}

// Complete does nothing.
func (v *NoOpVertex) Complete(_ error) {}
