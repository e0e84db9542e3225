package types

import (
	"encoding/json"
	"slices"
)

// Activator is the part of a mod registry a preset needs to switch its mods
// off. *ModRegistry implements it.
type Activator interface {
	SetModActive(id ModID, active bool) error
	SetModsActive(ids []ModID, active bool) error
}

// Preset is a named, user-managed group of mods that can be switched on and
// off as a unit.
//
// Enabling a preset only records intent; its mods are activated by the next
// reconciliation pass. Disabling deactivates its mods immediately.
type Preset struct {
	name    PresetName
	mods    []ModID
	enabled bool
	extra   map[string]json.RawMessage
}

// NewPreset returns a disabled preset holding mods in the given order.
func NewPreset(name PresetName, mods []ModID) *Preset {
	return &Preset{name: name, mods: slices.Clone(mods)}
}

// Name returns the preset's name.
func (p *Preset) Name() PresetName { return p.name }

// Rename changes the preset's name, which is also its storage key.
func (p *Preset) Rename(name PresetName) { p.name = name }

// Mods returns a copy of the preset's mod ids in insertion order.
func (p *Preset) Mods() []ModID { return slices.Clone(p.mods) }

// Enabled reports whether the preset takes part in reconciliation.
func (p *Preset) Enabled() bool { return p.enabled }

// AddMod appends id. Duplicates are kept.
func (p *Preset) AddMod(id ModID) {
	p.mods = append(p.mods, id)
}

// AddMods appends ids in order. Duplicates are kept.
func (p *Preset) AddMods(ids []ModID) {
	p.mods = append(p.mods, ids...)
}

// RemoveMod removes every occurrence of id. Absent ids are ignored.
func (p *Preset) RemoveMod(id ModID) {
	p.mods = slices.DeleteFunc(p.mods, func(m ModID) bool { return m == id })
}

// RemoveMods removes every occurrence of each id in ids. Absent ids are ignored.
func (p *Preset) RemoveMods(ids []ModID) {
	drop := make(map[ModID]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	p.mods = slices.DeleteFunc(p.mods, func(m ModID) bool {
		_, ok := drop[m]
		return ok
	})
}

// Enable marks the preset enabled. No registry is touched.
func (p *Preset) Enable() {
	p.enabled = true
}

// Disable deactivates all of the preset's mods in reg and marks the preset disabled.
//
// If any mod is unknown to reg the batch error is returned and neither reg
// nor the preset change.
func (p *Preset) Disable(reg Activator) error {
	if err := reg.SetModsActive(p.mods, false); err != nil {
		return err
	}
	p.enabled = false
	return nil
}

// ForceDisable marks the preset disabled and deactivates each of its mods
// that reg knows about. Unknown mods are skipped.
func (p *Preset) ForceDisable(reg Activator) {
	p.enabled = false
	for _, id := range p.mods {
		// The only failure is a *MissingModsError for this id.
		_ = reg.SetModActive(id, false)
	}
}

// MarshalJSON encodes the preset as {"name", "mods", "enabled"} plus any
// fields carried over from the file it was loaded from.
func (p *Preset) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(p.extra)+3)
	for k, v := range p.extra {
		out[k] = v
	}
	mods := p.mods
	if mods == nil {
		mods = []ModID{}
	}
	fields := map[string]any{"name": p.name, "mods": mods, "enabled": p.enabled}
	for k, v := range fields {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		out[k] = b
	}
	return json.Marshal(out)
}

// UnmarshalJSON mirrors MarshalJSON.
func (p *Preset) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var aux struct {
		Name    PresetName `json:"name"`
		Mods    []ModID    `json:"mods"`
		Enabled bool       `json:"enabled"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	for _, k := range []string{"name", "mods", "enabled"} {
		delete(raw, k)
	}
	p.name, p.mods, p.enabled, p.extra = aux.Name, aux.Mods, aux.Enabled, raw
	return nil
}
