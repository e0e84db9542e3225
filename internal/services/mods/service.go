package mods

import (
	"log/slog"

	"beammm/internal/collation"
	"beammm/internal/crypto"
	"beammm/internal/domain"
)

// Service holds the working copy of the mod registry.
type Service struct {
	store domain.RegistryStore
	log   *slog.Logger
	reg   *domain.ModRegistry
}

// New returns a mods service backed by the given store.
func New(store domain.RegistryStore, log *slog.Logger) *Service {
	return &Service{store: store, log: log}
}

// Registry returns the working registry, loading it on first use.
func (s *Service) Registry() (*domain.ModRegistry, error) {
	if s.reg != nil {
		return s.reg, nil
	}
	reg, err := s.store.LoadRegistry()
	if err != nil {
		return nil, err
	}
	s.log.Debug("mod registry loaded", "mods", reg.Len())
	s.reg = reg
	return reg, nil
}

// ListMods returns every known mod and its state, ordered by id.
func (s *Service) ListMods() ([]domain.ModStatus, error) {
	reg, err := s.Registry()
	if err != nil {
		return nil, err
	}
	out := make([]domain.ModStatus, 0, reg.Len())
	for id := range reg.Mods() {
		active, _ := reg.IsModActive(id)
		out = append(out, domain.ModStatus{ID: id, Active: active})
	}
	collation.Sort(out, func(m domain.ModStatus) string { return m.ID.String() })
	return out, nil
}

// SetModsActive activates or deactivates ids as one batch.
func (s *Service) SetModsActive(ids []domain.ModID, active bool) error {
	reg, err := s.Registry()
	if err != nil {
		return err
	}
	if err := reg.SetModsActive(ids, active); err != nil {
		return err
	}
	s.log.Info("mods updated", "count", len(ids), "active", active)
	return nil
}

// SetAllModsActive activates or deactivates every known mod.
func (s *Service) SetAllModsActive(active bool) error {
	reg, err := s.Registry()
	if err != nil {
		return err
	}
	if err := reg.SetAllModsActive(active); err != nil {
		return err
	}
	s.log.Info("all mods updated", "count", reg.Len(), "active", active)
	return nil
}

// FingerprintActive returns a short fingerprint of the set of active mods.
func (s *Service) FingerprintActive() (domain.Fingerprint, error) {
	reg, err := s.Registry()
	if err != nil {
		return "", err
	}
	return crypto.Fingerprint(reg.ActiveMods()), nil
}

// SaveRegistry writes the working registry back. It is a no-op if the
// registry was never loaded.
func (s *Service) SaveRegistry() error {
	if s.reg == nil {
		return nil
	}
	if err := s.store.SaveRegistry(s.reg); err != nil {
		return err
	}
	s.log.Debug("mod registry saved", "active", len(s.reg.ActiveMods()))
	return nil
}

// Compile-time assertion that Service implements domain.ModService.
var _ domain.ModService = (*Service)(nil)
