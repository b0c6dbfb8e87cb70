// Package history implements the durable ledger of workflow runs.
package history

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.rpmci.dev/rpmci/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultPath is the ledger file relative to the working directory.
const DefaultPath = ".rpmci/history.json"

// Store implements ports.RecordStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.BuildRecord
}

// NewStore creates a RecordStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.BuildRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // path is cleaned and provided by a trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read build history")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal build history")
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal build history")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for build history")
	}

	//nolint:gosec // path is cleaned and provided by a trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write build history")
	}

	return nil
}

// Get retrieves the record stored under key.
func (s *Store) Get(key string) (*domain.BuildRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[key]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record under its key, overwriting any previous entry.
func (s *Store) Put(record domain.BuildRecord) error {
	s.mu.Lock()
	s.cache[record.Key()] = record
	s.mu.Unlock()

	return s.save()
}
