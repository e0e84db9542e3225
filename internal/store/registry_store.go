package store

import (
	"fmt"
	"path/filepath"
	"sync"

	"beammm/internal/domain"
)

const registryFilename = "db.json"

// RegistryFileStore reads and writes the game's mod database in a mods directory.
type RegistryFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewRegistryFileStore returns a RegistryFileStore for the mods directory dir.
func NewRegistryFileStore(dir string) *RegistryFileStore {
	return &RegistryFileStore{dir: dir}
}

// Path returns the location of the mod database.
func (s *RegistryFileStore) Path() string {
	return filepath.Join(s.dir, registryFilename)
}

// LoadRegistry reads db.json. The mods directory and the file must both exist.
func (s *RegistryFileStore) LoadRegistry() (*domain.ModRegistry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := dirExists(s.dir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &domain.DirNotFoundError{Dir: s.dir}
	}

	reg := &domain.ModRegistry{}
	found, err := readJSON(s.Path(), reg)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Path(), err)
	}
	if !found {
		return nil, fmt.Errorf("reading %s: mod database not found", s.Path())
	}
	return reg, nil
}

// SaveRegistry writes registry back to db.json, preserving unknown fields.
func (s *RegistryFileStore) SaveRegistry(registry *domain.ModRegistry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(s.Path(), registry, 0o644)
}

// Compile-time assertion that RegistryFileStore implements domain.RegistryStore.
var _ domain.RegistryStore = (*RegistryFileStore)(nil)
