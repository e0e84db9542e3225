package reconcile

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"beammm/internal/domain/types"
)

// Source lists and loads stored presets. domain.PresetStore satisfies it.
type Source interface {
	ListPresets() ([]types.PresetName, error)
	LoadPreset(name types.PresetName) (*types.Preset, error)
}

// Apply loads every preset from src and activates, in reg, the mods of each
// enabled one.
//
// Errors listing or loading presets abort the pass. A preset whose mods are
// not all known to reg is skipped and reported, under the name it was listed
// by, in the returned *types.PresetsFailedError.
func Apply(src Source, reg types.Activator) error {
	names, err := src.ListPresets()
	if err != nil {
		return fmt.Errorf("listing presets: %w", err)
	}

	var r result
	for _, name := range names {
		preset, err := src.LoadPreset(name)
		if err != nil {
			return fmt.Errorf("loading preset %q: %w", name, err)
		}
		if err := r.apply(name, preset, reg); err != nil {
			return err
		}
	}
	return r.err()
}

// ApplyAll is Apply over presets that are already in memory.
func ApplyAll(presets []*types.Preset, reg types.Activator) error {
	var r result
	for _, preset := range presets {
		if err := r.apply(preset.Name(), preset, reg); err != nil {
			return err
		}
	}
	return r.err()
}

// result accumulates the failures of one pass.
type result struct {
	missing map[types.ModID]struct{}
	failed  map[types.PresetName]struct{}
}

// apply activates one preset's mods. Only errors other than missing mods are returned.
func (r *result) apply(name types.PresetName, preset *types.Preset, reg types.Activator) error {
	if !preset.Enabled() {
		return nil
	}
	err := reg.SetModsActive(preset.Mods(), true)
	if err == nil {
		return nil
	}

	var missing *types.MissingModsError
	if !errors.As(err, &missing) {
		return fmt.Errorf("applying preset %q: %w", name, err)
	}
	if r.missing == nil {
		r.missing = make(map[types.ModID]struct{})
		r.failed = make(map[types.PresetName]struct{})
	}
	for _, id := range missing.IDs {
		r.missing[id] = struct{}{}
	}
	r.failed[name] = struct{}{}
	return nil
}

func (r *result) err() error {
	if len(r.failed) == 0 {
		return nil
	}
	return &types.PresetsFailedError{
		Mods:    slices.Sorted(maps.Keys(r.missing)),
		Presets: slices.Sorted(maps.Keys(r.failed)),
	}
}
