// Package domain contains the core domain models for cache-gated stage execution.
package domain

// RunRecord is the persisted hash snapshot of a stage's inputs and outputs
// from its last execution. It is replaced wholesale on every run; there is
// no partial update path.
type RunRecord struct {
	Inputs  map[string]string `json:"inputs"`
	Outputs map[string]string `json:"outputs"`
}

// NewRunRecord creates an empty RunRecord with initialized maps.
func NewRunRecord() RunRecord {
	return RunRecord{
		Inputs:  make(map[string]string),
		Outputs: make(map[string]string),
	}
}
