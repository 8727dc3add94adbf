package ports

import "go.trai.ch/stager/internal/core/domain"

// RecordStore defines the interface for persisting run records.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RecordStore interface {
	// Load retrieves the run record for a stage name.
	// Returns nil, nil if no record exists.
	Load(name string) (*domain.RunRecord, error)

	// Save persists the record, fully replacing any prior record for the name.
	Save(name string, record domain.RunRecord) error
}
