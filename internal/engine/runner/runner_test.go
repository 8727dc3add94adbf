package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/stager/internal/adapters/fs"
	"go.trai.ch/stager/internal/adapters/state"
	"go.trai.ch/stager/internal/adapters/telemetry"
	"go.trai.ch/stager/internal/engine/runner"
	"go.trai.ch/zerr"
)

type silentLogger struct{}

func (silentLogger) Info(string) {}
func (silentLogger) Warn(string) {}
func (silentLogger) Error(error) {}

// fakeStage is a scriptable stage counting its executions.
type fakeStage struct {
	name    string
	inputs  []string
	outputs []string
	code    int
	err     error
	runs    int
}

func (s *fakeStage) Name() string      { return s.name }
func (s *fakeStage) Inputs() []string  { return s.inputs }
func (s *fakeStage) Outputs() []string { return s.outputs }

func (s *fakeStage) Run(_ context.Context) (int, error) {
	s.runs++
	return s.code, s.err
}

func newRunner(store *state.MemoryStore) *runner.Runner {
	return runner.New(fs.NewHasher(), store, silentLogger{}, telemetry.NewNoOp())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestExecute_FirstRunAlwaysRuns(t *testing.T) {
	input := filepath.Join(t.TempDir(), "a.txt")
	writeFile(t, input, "1")

	stage := &fakeStage{name: "U", inputs: []string{input}}
	r := newRunner(state.NewMemoryStore())

	code, err := r.Execute(context.Background(), stage)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if code != 0 {
		t.Errorf("expected exit code 0, got %d", code)
	}
	if stage.runs != 1 {
		t.Errorf("expected 1 run, got %d", stage.runs)
	}
}

func TestExecute_SkipsWhenNothingChanged(t *testing.T) {
	input := filepath.Join(t.TempDir(), "a.txt")
	writeFile(t, input, "1")

	stage := &fakeStage{name: "U", inputs: []string{input}}
	r := newRunner(state.NewMemoryStore())

	if _, err := r.Execute(context.Background(), stage); err != nil {
		t.Fatalf("first Execute failed: %v", err)
	}

	code, err := r.Execute(context.Background(), stage)
	if err != nil {
		t.Fatalf("second Execute failed: %v", err)
	}
	if code != 0 {
		t.Errorf("expected exit code 0 on skip, got %d", code)
	}
	if stage.runs != 1 {
		t.Errorf("expected action not to run again, got %d runs", stage.runs)
	}
}

func TestExecute_RerunsWhenInputChanged(t *testing.T) {
	input := filepath.Join(t.TempDir(), "a.txt")
	writeFile(t, input, "1")

	stage := &fakeStage{name: "U", inputs: []string{input}}
	r := newRunner(state.NewMemoryStore())

	if _, err := r.Execute(context.Background(), stage); err != nil {
		t.Fatalf("first Execute failed: %v", err)
	}

	// Skip while unchanged.
	if _, err := r.Execute(context.Background(), stage); err != nil {
		t.Fatalf("second Execute failed: %v", err)
	}
	if stage.runs != 1 {
		t.Fatalf("expected skip on unchanged input, got %d runs", stage.runs)
	}

	writeFile(t, input, "2")

	if _, err := r.Execute(context.Background(), stage); err != nil {
		t.Fatalf("third Execute failed: %v", err)
	}
	if stage.runs != 2 {
		t.Errorf("expected rerun after change, got %d runs", stage.runs)
	}
}

func TestExecute_RerunsWhenRecordedFileDeleted(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "a.txt")
	writeFile(t, input, "1")

	stage := &fakeStage{name: "U", inputs: []string{input}}
	r := newRunner(state.NewMemoryStore())

	if _, err := r.Execute(context.Background(), stage); err != nil {
		t.Fatalf("first Execute failed: %v", err)
	}

	if err := os.Remove(input); err != nil {
		t.Fatalf("failed to remove input: %v", err)
	}
	// The stage recreates its input when it runs.
	writeFile(t, input, "1")

	if _, err := r.Execute(context.Background(), stage); err != nil {
		t.Fatalf("second Execute failed: %v", err)
	}
	if stage.runs != 1 {
		// Recreated identical content still matches the recorded hash.
		t.Fatalf("expected skip for identical recreated file, got %d runs", stage.runs)
	}

	if err := os.Remove(input); err != nil {
		t.Fatalf("failed to remove input: %v", err)
	}

	stage2 := &fakeStage{name: "U", inputs: []string{}}
	if _, err := r.Execute(context.Background(), stage2); err != nil {
		t.Fatalf("third Execute failed: %v", err)
	}
	if stage2.runs != 1 {
		t.Errorf("expected rerun after deletion, got %d runs", stage2.runs)
	}
}

func TestExecute_DeletedRecordBehavesLikeFirstRun(t *testing.T) {
	input := filepath.Join(t.TempDir(), "a.txt")
	writeFile(t, input, "1")

	store := state.NewMemoryStore()
	stage := &fakeStage{name: "U", inputs: []string{input}}
	r := newRunner(store)

	if _, err := r.Execute(context.Background(), stage); err != nil {
		t.Fatalf("first Execute failed: %v", err)
	}

	store.Delete("U")

	if _, err := r.Execute(context.Background(), stage); err != nil {
		t.Fatalf("second Execute failed: %v", err)
	}
	if stage.runs != 2 {
		t.Errorf("expected rerun after record deletion, got %d runs", stage.runs)
	}
}

func TestExecute_IdempotentConvergence(t *testing.T) {
	input := filepath.Join(t.TempDir(), "a.txt")
	writeFile(t, input, "stable")

	stage := &fakeStage{name: "U", inputs: []string{input}}
	r := newRunner(state.NewMemoryStore())

	for i := 0; i < 5; i++ {
		code, err := r.Execute(context.Background(), stage)
		if err != nil {
			t.Fatalf("Execute %d failed: %v", i, err)
		}
		if code != 0 {
			t.Errorf("Execute %d: expected exit code 0, got %d", i, code)
		}
	}
	if stage.runs != 1 {
		t.Errorf("expected exactly one run over repeated executions, got %d", stage.runs)
	}
}

func TestExecute_NonZeroExitStillSavesRecord(t *testing.T) {
	input := filepath.Join(t.TempDir(), "a.txt")
	writeFile(t, input, "1")

	store := state.NewMemoryStore()
	stage := &fakeStage{name: "U", inputs: []string{input}, code: 2}
	r := newRunner(store)

	code, err := r.Execute(context.Background(), stage)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if code != 2 {
		t.Errorf("expected propagated exit code 2, got %d", code)
	}

	record, err := store.Load("U")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if record == nil {
		t.Fatal("expected record to be saved after a failing run")
	}

	// A failing run is cached like any other.
	if _, err := r.Execute(context.Background(), stage); err != nil {
		t.Fatalf("second Execute failed: %v", err)
	}
	if stage.runs != 1 {
		t.Errorf("expected skip after failing run, got %d runs", stage.runs)
	}
}

func TestExecute_ActionErrorSkipsRecord(t *testing.T) {
	input := filepath.Join(t.TempDir(), "a.txt")
	writeFile(t, input, "1")

	store := state.NewMemoryStore()
	stage := &fakeStage{name: "U", inputs: []string{input}, err: zerr.New("boom")}
	r := newRunner(store)

	if _, err := r.Execute(context.Background(), stage); err == nil {
		t.Fatal("expected error from failing action")
	}

	record, _ := store.Load("U")
	if record != nil {
		t.Error("expected no record after an action error")
	}
}

func TestExecute_OutputsAreRecorded(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "in.txt")
	output := filepath.Join(tmpDir, "out.txt")
	writeFile(t, input, "in")
	writeFile(t, output, "out")

	store := state.NewMemoryStore()
	stage := &fakeStage{name: "U", inputs: []string{input}, outputs: []string{output}}
	r := newRunner(store)

	if _, err := r.Execute(context.Background(), stage); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	record, err := store.Load("U")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, ok := record.Outputs[output]; !ok {
		t.Error("expected output hash in record")
	}

	// Tampering with an output triggers a rerun.
	writeFile(t, output, "tampered")
	if _, err := r.Execute(context.Background(), stage); err != nil {
		t.Fatalf("second Execute failed: %v", err)
	}
	if stage.runs != 2 {
		t.Errorf("expected rerun after output change, got %d runs", stage.runs)
	}
}

func TestExecute_ScenarioFromFirstPrinciples(t *testing.T) {
	// Unit U declares inputs [a.txt] ("1") and no outputs.
	input := filepath.Join(t.TempDir(), "a.txt")
	writeFile(t, input, "1")

	stage := &fakeStage{name: "U", inputs: []string{input}}
	r := newRunner(state.NewMemoryStore())

	// First execute runs the action and persists the hash.
	if _, err := r.Execute(context.Background(), stage); err != nil {
		t.Fatalf("first Execute failed: %v", err)
	}
	if stage.runs != 1 {
		t.Fatalf("expected first run, got %d", stage.runs)
	}

	// Second execute with a.txt unchanged returns 0 without running.
	code, err := r.Execute(context.Background(), stage)
	if err != nil {
		t.Fatalf("second Execute failed: %v", err)
	}
	if code != 0 || stage.runs != 1 {
		t.Fatalf("expected cached skip, code=%d runs=%d", code, stage.runs)
	}

	// Modify a.txt to "2"; third execute runs the action again.
	writeFile(t, input, "2")
	if _, err := r.Execute(context.Background(), stage); err != nil {
		t.Fatalf("third Execute failed: %v", err)
	}
	if stage.runs != 2 {
		t.Errorf("expected rerun after modification, got %d runs", stage.runs)
	}
}

func TestExecute_PersistsAcrossStoreInstances(t *testing.T) {
	tmpDir := t.TempDir()
	cacheDir := filepath.Join(tmpDir, "cache")
	input := filepath.Join(tmpDir, "a.txt")
	writeFile(t, input, "1")

	stage := &fakeStage{name: "U", inputs: []string{input}}

	r1 := runner.New(fs.NewHasher(), state.NewStore(cacheDir), silentLogger{}, telemetry.NewNoOp())
	if _, err := r1.Execute(context.Background(), stage); err != nil {
		t.Fatalf("first Execute failed: %v", err)
	}

	// A fresh store instance reads the same persisted record.
	r2 := runner.New(fs.NewHasher(), state.NewStore(cacheDir), silentLogger{}, telemetry.NewNoOp())
	if _, err := r2.Execute(context.Background(), stage); err != nil {
		t.Fatalf("second Execute failed: %v", err)
	}
	if stage.runs != 1 {
		t.Errorf("expected persisted record to cause skip, got %d runs", stage.runs)
	}

	// Removing the record file resets to a first-ever run.
	if err := os.Remove(filepath.Join(cacheDir, "U.deps.json")); err != nil {
		t.Fatalf("failed to remove record: %v", err)
	}
	if _, err := r2.Execute(context.Background(), stage); err != nil {
		t.Fatalf("third Execute failed: %v", err)
	}
	if stage.runs != 2 {
		t.Errorf("expected rerun after record file removal, got %d runs", stage.runs)
	}
}
