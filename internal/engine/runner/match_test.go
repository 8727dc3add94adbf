package runner_test

import (
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/stager/internal/adapters/fs"
	"go.trai.ch/stager/internal/adapters/state"
	"go.trai.ch/stager/internal/core/domain"
)

func saveRecord(t *testing.T, store *state.MemoryStore, name string, record domain.RunRecord) {
	t.Helper()
	if err := store.Save(name, record); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
}

func hashOf(t *testing.T, path string) string {
	t.Helper()
	hash, err := fs.NewHasher().HashFile(path)
	if err != nil {
		t.Fatalf("HashFile failed: %v", err)
	}
	return hash
}

func TestEvaluate_NoRecord(t *testing.T) {
	r := newRunner(state.NewMemoryStore())

	decision, err := r.Evaluate("U")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if decision.Status != domain.StatusNoRecord {
		t.Errorf("expected StatusNoRecord, got %v", decision.Status)
	}
	if !decision.ShouldRun() {
		t.Error("expected ShouldRun for missing record")
	}
	if decision.Reason() != "No previous execution info found." {
		t.Errorf("unexpected reason %q", decision.Reason())
	}
}

func TestEvaluate_Match(t *testing.T) {
	input := filepath.Join(t.TempDir(), "a.txt")
	writeFile(t, input, "1")

	store := state.NewMemoryStore()
	record := domain.NewRunRecord()
	record.Inputs[input] = hashOf(t, input)
	saveRecord(t, store, "U", record)

	decision, err := newRunner(store).Evaluate("U")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if decision.Status != domain.StatusMatch {
		t.Errorf("expected StatusMatch, got %v", decision.Status)
	}
	if decision.ShouldRun() {
		t.Error("expected no run for matching record")
	}
	if decision.Reason() != "Nothing changed. Previous execution info matches." {
		t.Errorf("unexpected reason %q", decision.Reason())
	}
}

func TestEvaluate_FileMissing(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "a.txt")
	writeFile(t, input, "1")

	store := state.NewMemoryStore()
	record := domain.NewRunRecord()
	record.Inputs[input] = hashOf(t, input)
	saveRecord(t, store, "U", record)

	if err := os.Remove(input); err != nil {
		t.Fatalf("failed to remove input: %v", err)
	}

	decision, err := newRunner(store).Evaluate("U")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if decision.Status != domain.StatusFileMissing {
		t.Errorf("expected StatusFileMissing, got %v", decision.Status)
	}
	if decision.Path != input {
		t.Errorf("expected offending path %q, got %q", input, decision.Path)
	}
	if decision.Reason() != "File not found." {
		t.Errorf("unexpected reason %q", decision.Reason())
	}
}

func TestEvaluate_FileChanged(t *testing.T) {
	input := filepath.Join(t.TempDir(), "a.txt")
	writeFile(t, input, "1")

	store := state.NewMemoryStore()
	record := domain.NewRunRecord()
	record.Inputs[input] = hashOf(t, input)
	saveRecord(t, store, "U", record)

	writeFile(t, input, "2")

	decision, err := newRunner(store).Evaluate("U")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if decision.Status != domain.StatusFileChanged {
		t.Errorf("expected StatusFileChanged, got %v", decision.Status)
	}
	if decision.Path != input {
		t.Errorf("expected offending path %q, got %q", input, decision.Path)
	}
	if decision.Reason() != "File has changed." {
		t.Errorf("unexpected reason %q", decision.Reason())
	}
}

func TestEvaluate_ChangedOutputDetectedAfterMatchingInputs(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "in.txt")
	output := filepath.Join(tmpDir, "out.txt")
	writeFile(t, input, "in")
	writeFile(t, output, "out")

	store := state.NewMemoryStore()
	record := domain.NewRunRecord()
	record.Inputs[input] = hashOf(t, input)
	record.Outputs[output] = hashOf(t, output)
	saveRecord(t, store, "U", record)

	writeFile(t, output, "tampered")

	decision, err := newRunner(store).Evaluate("U")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if decision.Status != domain.StatusFileChanged {
		t.Errorf("expected StatusFileChanged, got %v", decision.Status)
	}
	if decision.Path != output {
		t.Errorf("expected offending path %q, got %q", output, decision.Path)
	}
}

func TestEvaluate_FirstOffenderInLexicographicOrder(t *testing.T) {
	tmpDir := t.TempDir()
	first := filepath.Join(tmpDir, "a.txt")
	second := filepath.Join(tmpDir, "b.txt")
	writeFile(t, first, "a")
	writeFile(t, second, "b")

	store := state.NewMemoryStore()
	record := domain.NewRunRecord()
	record.Inputs[first] = hashOf(t, first)
	record.Inputs[second] = hashOf(t, second)
	saveRecord(t, store, "U", record)

	writeFile(t, first, "a changed")
	writeFile(t, second, "b changed")

	decision, err := newRunner(store).Evaluate("U")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if decision.Path != first {
		t.Errorf("expected lexicographically first offender %q, got %q", first, decision.Path)
	}
}

func TestEvaluate_StaleDeclarationsStillMatch(t *testing.T) {
	// The evaluator walks the recorded snapshot, not the current
	// declarations. A record over an unchanged file matches even if the
	// stage now declares different inputs.
	input := filepath.Join(t.TempDir(), "a.txt")
	writeFile(t, input, "1")

	store := state.NewMemoryStore()
	record := domain.NewRunRecord()
	record.Inputs[input] = hashOf(t, input)
	saveRecord(t, store, "U", record)

	decision, err := newRunner(store).Evaluate("U")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if decision.Status != domain.StatusMatch {
		t.Errorf("expected StatusMatch for untouched recorded files, got %v", decision.Status)
	}
}

func TestEvaluate_EmptyRecordMatches(t *testing.T) {
	store := state.NewMemoryStore()
	saveRecord(t, store, "U", domain.NewRunRecord())

	decision, err := newRunner(store).Evaluate("U")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if decision.ShouldRun() {
		t.Error("expected empty record to match")
	}
}
