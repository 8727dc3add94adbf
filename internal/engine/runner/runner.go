// Package runner implements cache-gated stage execution.
package runner

import (
	"context"
	"fmt"

	"go.trai.ch/stager/internal/core/domain"
	"go.trai.ch/stager/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner executes stages behind a content-hash cache. For each stage it
// compares the persisted run record against the current file contents, runs
// the stage's action only when they diverge, and persists fresh hashes
// afterwards.
type Runner struct {
	hasher    ports.Hasher
	store     ports.RecordStore
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new Runner.
func New(
	hasher ports.Hasher,
	store ports.RecordStore,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Runner {
	return &Runner{
		hasher:    hasher,
		store:     store,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Execute runs the stage if its cached state is stale and returns the
// action's exit code. A matching record skips the action and yields 0.
//
// The record is persisted after every completed action, even one that
// exited non-zero; only an action that fails to complete at all leaves the
// record untouched.
func (r *Runner) Execute(ctx context.Context, stage ports.Stage) (int, error) {
	ctx, vtx := r.telemetry.Record(ctx, stage.Name())

	decision, err := r.Evaluate(stage.Name())
	if err != nil {
		vtx.Complete(err)
		return 0, err
	}

	if !decision.ShouldRun() {
		r.logger.Info(fmt.Sprintf("stage %q execution skipped: %s", stage.Name(), decision.Reason()))
		vtx.Cached()
		vtx.Complete(nil)
		return 0, nil
	}

	r.logger.Info(fmt.Sprintf("stage %q must run: %s", stage.Name(), decision.Reason()))

	code, err := stage.Run(ctx)
	if err != nil {
		wrapped := zerr.With(zerr.Wrap(err, "stage action failed"), "stage", stage.Name())
		vtx.Complete(wrapped)
		return code, wrapped
	}

	record, err := r.snapshot(stage)
	if err != nil {
		vtx.Complete(err)
		return code, err
	}
	if err := r.store.Save(stage.Name(), record); err != nil {
		vtx.Complete(err)
		return code, err
	}

	vtx.Complete(nil)
	return code, nil
}

// snapshot hashes the stage's currently declared inputs and outputs.
// Declarations, not the stale recorded set, drive the new record.
func (r *Runner) snapshot(stage ports.Stage) (domain.RunRecord, error) {
	record := domain.NewRunRecord()

	for _, path := range stage.Inputs() {
		hash, err := r.hasher.HashFile(path)
		if err != nil {
			return domain.RunRecord{}, err
		}
		record.Inputs[path] = hash
	}

	for _, path := range stage.Outputs() {
		hash, err := r.hasher.HashFile(path)
		if err != nil {
			return domain.RunRecord{}, err
		}
		record.Outputs[path] = hash
	}

	return record, nil
}
