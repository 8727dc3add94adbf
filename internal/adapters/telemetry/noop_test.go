package telemetry_test

import (
	"context"
	"testing"

	"go.trai.ch/stager/internal/adapters/telemetry"
)

func TestNoOp(t *testing.T) {
	n := telemetry.NewNoOp()

	ctx, vtx := n.Record(context.Background(), "stage")
	if ctx == nil || vtx == nil {
		t.Fatal("expected usable context and vertex")
	}

	if _, err := vtx.Stdout().Write([]byte("ignored")); err != nil {
		t.Errorf("Stdout write failed: %v", err)
	}
	if _, err := vtx.Stderr().Write([]byte("ignored")); err != nil {
		t.Errorf("Stderr write failed: %v", err)
	}

	vtx.Cached()
	vtx.Complete(nil)

	if err := n.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}
