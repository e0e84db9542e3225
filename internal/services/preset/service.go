package preset

import (
	"errors"
	"fmt"
	"log/slog"

	"beammm/internal/collation"
	"beammm/internal/domain"
	"beammm/internal/reconcile"
)

// Service manages presets in a backing store.
type Service struct {
	store domain.PresetStore
	log   *slog.Logger
}

// New returns a preset service backed by the given store.
func New(store domain.PresetStore, log *slog.Logger) *Service {
	return &Service{store: store, log: log}
}

// ListPresets returns every stored preset's status, ordered by name.
func (s *Service) ListPresets() ([]domain.PresetStatus, error) {
	names, err := s.store.ListPresets()
	if err != nil {
		return nil, err
	}
	out := make([]domain.PresetStatus, 0, len(names))
	for _, name := range names {
		p, err := s.store.LoadPreset(name)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.PresetStatus{Name: name, Enabled: p.Enabled(), Mods: len(p.Mods())})
	}
	collation.Sort(out, func(p domain.PresetStatus) string { return p.Name.String() })
	return out, nil
}

// ShowPreset loads a single preset.
func (s *Service) ShowPreset(name domain.PresetName) (*domain.Preset, error) {
	return s.store.LoadPreset(name)
}

// CreatePreset stores a new, disabled preset. It fails with a
// *domain.PresetExistsError if the name is taken.
func (s *Service) CreatePreset(name domain.PresetName, mods []domain.ModID) (*domain.Preset, error) {
	exists, err := s.store.PresetExists(name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &domain.PresetExistsError{Preset: name}
	}
	p := domain.NewPreset(name, mods)
	if err := s.store.SavePreset(p); err != nil {
		return nil, err
	}
	s.log.Info("preset created", "preset", name, "mods", len(mods))
	return p, nil
}

// DeletePreset removes a stored preset. Its mods keep their current state.
func (s *Service) DeletePreset(name domain.PresetName) error {
	if err := s.store.DeletePreset(name); err != nil {
		return err
	}
	s.log.Info("preset deleted", "preset", name)
	return nil
}

// AddMods appends mods to a stored preset without checking that they exist.
func (s *Service) AddMods(name domain.PresetName, mods []domain.ModID) error {
	return s.update(name, func(p *domain.Preset) error {
		p.AddMods(mods)
		return nil
	})
}

// RemoveMods drops every occurrence of mods from a stored preset.
func (s *Service) RemoveMods(name domain.PresetName, mods []domain.ModID) error {
	return s.update(name, func(p *domain.Preset) error {
		p.RemoveMods(mods)
		return nil
	})
}

// EnablePreset marks a stored preset enabled. Its mods are activated by the
// next ApplyPresets.
func (s *Service) EnablePreset(name domain.PresetName) error {
	return s.update(name, func(p *domain.Preset) error {
		p.Enable()
		return nil
	})
}

// DisablePreset deactivates the preset's mods in registry and marks it
// disabled. If any of its mods are unknown nothing changes.
func (s *Service) DisablePreset(name domain.PresetName, registry domain.Activator) error {
	return s.update(name, func(p *domain.Preset) error {
		return p.Disable(registry)
	})
}

// ApplyPresets activates the mods of every enabled preset in registry.
//
// Presets that reference unknown mods are force-disabled and saved, then the
// remaining enabled presets are applied once more so that mods shared with a
// failed preset are switched back on. The *domain.PresetsFailedError from the
// first pass is returned after recovery so callers can report it.
func (s *Service) ApplyPresets(registry domain.Activator) error {
	err := reconcile.Apply(s.store, registry)
	var failed *domain.PresetsFailedError
	if !errors.As(err, &failed) {
		return err
	}

	s.log.Warn("presets failed, disabling them",
		"presets", failed.Presets, "missing_mods", failed.Mods)
	for _, name := range failed.Presets {
		p, err := s.store.LoadPreset(name)
		if err != nil {
			return fmt.Errorf("recovering preset %q: %w", name, err)
		}
		p.ForceDisable(registry)
		if err := s.store.SavePreset(p); err != nil {
			return fmt.Errorf("recovering preset %q: %w", name, err)
		}
	}

	if err := reconcile.Apply(s.store, registry); err != nil {
		return fmt.Errorf("reapplying presets: %w", err)
	}
	return failed
}

// update loads a preset, applies fn and saves it if fn succeeds.
func (s *Service) update(name domain.PresetName, fn func(*domain.Preset) error) error {
	p, err := s.store.LoadPreset(name)
	if err != nil {
		return err
	}
	if err := fn(p); err != nil {
		return err
	}
	if err := s.store.SavePreset(p); err != nil {
		return err
	}
	s.log.Info("preset updated", "preset", name, "enabled", p.Enabled(), "mods", len(p.Mods()))
	return nil
}

// Compile-time assertion that Service implements domain.PresetService.
var _ domain.PresetService = (*Service)(nil)
