package domain

// MatchStatus is the verdict on whether a stage's cached state is still valid.
type MatchStatus int

const (
	// StatusMatch indicates all recorded files exist and their hashes match.
	StatusMatch MatchStatus = iota
	// StatusNoRecord indicates no run record exists for the stage.
	StatusNoRecord
	// StatusFileMissing indicates a recorded file no longer exists on disk.
	StatusFileMissing
	// StatusFileChanged indicates a recorded file's content hash changed.
	StatusFileChanged
)

// ShouldRun reports whether the stage must be executed for this status.
func (s MatchStatus) ShouldRun() bool {
	return s != StatusMatch
}

// Message returns the human-readable reason for this status.
func (s MatchStatus) Message() string {
	switch s {
	case StatusMatch:
		return "Nothing changed. Previous execution info matches."
	case StatusNoRecord:
		return "No previous execution info found."
	case StatusFileMissing:
		return "File not found."
	case StatusFileChanged:
		return "File has changed."
	default:
		return "Unknown status."
	}
}

// Decision is the match evaluator's result for one stage. Path names the
// first offending file for the missing and changed statuses; it is empty
// otherwise.
type Decision struct {
	Status MatchStatus
	Path   string
}

// ShouldRun reports whether the stage must be executed.
func (d Decision) ShouldRun() bool {
	return d.Status.ShouldRun()
}

// Reason returns the human-readable explanation for the decision.
func (d Decision) Reason() string {
	return d.Status.Message()
}
