package state

import (
	"sync"

	"go.trai.ch/stager/internal/core/domain"
	"go.trai.ch/stager/internal/core/ports"
)

var _ ports.RecordStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory ports.RecordStore, used in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]domain.RunRecord
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]domain.RunRecord),
	}
}

// Load retrieves the run record for a stage name.
func (s *MemoryStore) Load(name string) (*domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[name]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Save persists the record, replacing any prior record for the name.
func (s *MemoryStore) Save(name string, record domain.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[name] = record
	return nil
}

// Delete removes the record for a stage name.
func (s *MemoryStore) Delete(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, name)
}
