// Package state implements run record persistence.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/stager/internal/core/domain"
	"go.trai.ch/stager/internal/core/ports"
	"go.trai.ch/zerr"
)

// recordExtension is the suffix of persisted run record files.
const recordExtension = ".deps.json"

var _ ports.RecordStore = (*Store)(nil)

// Store implements ports.RecordStore with one JSON file per stage name,
// stored under a cache directory. Records are pretty-printed so they diff
// cleanly.
type Store struct {
	dir string
}

// NewStore creates a RecordStore rooted at the given cache directory.
func NewStore(dir string) *Store {
	return &Store{dir: filepath.Clean(dir)}
}

// Path returns the record file location for a stage name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+recordExtension)
}

// Load retrieves the run record for a stage name.
func (s *Store) Load(name string) (*domain.RunRecord, error) {
	//nolint:gosec // Path is derived from a trusted stage name
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read run record"), "stage", name)
	}

	var record domain.RunRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrCorruptRecord, err.Error()), "stage", name)
	}

	return &record, nil
}

// Save persists the record, fully replacing any prior record for the name.
func (s *Store) Save(name string, record domain.RunRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to marshal run record"), "stage", name)
	}

	path := s.Path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create record directory")
	}

	//nolint:gosec // Path is derived from a trusted stage name
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write run record"), "stage", name)
	}

	return nil
}
