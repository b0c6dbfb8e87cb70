package ports

import "go.rpmci.dev/rpmci/internal/core/domain"

// RecordStore defines the interface for the durable ledger of workflow runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RecordStore interface {
	// Get retrieves the record stored under key.
	// Returns nil, nil if not found.
	Get(key string) (*domain.BuildRecord, error)

	// Put stores the record under its key, overwriting any previous entry.
	Put(record domain.BuildRecord) error
}
