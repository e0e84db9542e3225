package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"beammm/internal/domain"
)

const presetExt = ".json"

// PresetFileStore keeps one JSON file per preset in a presets directory.
type PresetFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewPresetFileStore returns a PresetFileStore rooted at dir.
func NewPresetFileStore(dir string) *PresetFileStore {
	return &PresetFileStore{dir: dir}
}

// ListPresets returns the names of all stored presets in directory order.
// Subdirectories and files without a .json extension are ignored.
func (s *PresetFileStore) ListPresets() ([]domain.PresetName, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	names := make([]domain.PresetName, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() || filepath.Ext(e.Name()) != presetExt {
			continue
		}
		names = append(names, domain.PresetName(strings.TrimSuffix(e.Name(), presetExt)))
	}
	return names, nil
}

// LoadPreset reads the preset stored under name.
func (s *PresetFileStore) LoadPreset(name domain.PresetName) (*domain.Preset, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	preset := &domain.Preset{}
	found, err := readJSON(path, preset)
	if err != nil {
		return nil, fmt.Errorf("reading preset %q: %w", name, err)
	}
	if !found {
		return nil, &domain.MissingPresetError{Dir: s.dir, Preset: name}
	}
	// The file name is the key; a stale or missing "name" field follows it.
	if preset.Name() != name {
		preset.Rename(name)
	}
	return preset, nil
}

// SavePreset writes preset to <name>.json, replacing any previous version.
func (s *PresetFileStore) SavePreset(preset *domain.Preset) error {
	path, err := s.path(preset.Name())
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(path, preset, 0o644)
}

// DeletePreset removes the preset stored under name.
func (s *PresetFileStore) DeletePreset(name domain.PresetName) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return &domain.MissingPresetError{Dir: s.dir, Preset: name}
	}
	return err
}

// PresetExists reports whether a preset is stored under name.
func (s *PresetFileStore) PresetExists(name domain.PresetName) (bool, error) {
	path, err := s.path(name)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

// path maps a preset name to its file, rejecting names that are empty or
// would resolve outside the presets directory.
func (s *PresetFileStore) path(name domain.PresetName) (string, error) {
	n := name.String()
	if n == "" || n == "." || n == ".." || strings.ContainsAny(n, `/\`) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidPresetName, n)
	}
	return filepath.Join(s.dir, n+presetExt), nil
}

// Compile-time assertion that PresetFileStore implements domain.PresetStore.
var _ domain.PresetStore = (*PresetFileStore)(nil)
