package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
)

const (
	modsField   = "mods"
	activeField = "active"
)

// ModEntry is one mod tracked by the game.
//
// Extra holds every field the game writes that beammm does not interpret.
// It is written back unchanged so foreign data is never dropped.
type ModEntry struct {
	Active bool
	Extra  map[string]json.RawMessage
}

// MarshalJSON flattens Extra next to the "active" field.
func (e ModEntry) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(e.Extra)+1)
	for k, v := range e.Extra {
		out[k] = v
	}
	active, err := json.Marshal(e.Active)
	if err != nil {
		return nil, err
	}
	out[activeField] = active
	return json.Marshal(out)
}

// UnmarshalJSON mirrors MarshalJSON.
func (e *ModEntry) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	active, ok := raw[activeField]
	if !ok {
		return errors.New(`mod entry is missing the "active" field`)
	}
	if err := json.Unmarshal(active, &e.Active); err != nil {
		return err
	}
	delete(raw, activeField)
	e.Extra = raw
	return nil
}

// ModRegistry is the game's mod database: every installed mod keyed by id
// together with its activation state.
//
// Activation changes are all-or-nothing. A ModRegistry is not safe for
// concurrent use.
type ModRegistry struct {
	mods  map[ModID]*ModEntry
	extra map[string]json.RawMessage
}

// NewModRegistry builds a registry from id -> active pairs. Entries carry no extra fields.
func NewModRegistry(entries map[ModID]bool) *ModRegistry {
	r := &ModRegistry{mods: make(map[ModID]*ModEntry, len(entries))}
	for id, active := range entries {
		r.mods[id] = &ModEntry{Active: active}
	}
	return r
}

// SetModActive sets a single mod's activation state.
//
// It returns a *MissingModsError naming id if the mod is unknown; the
// registry is unchanged in that case.
func (r *ModRegistry) SetModActive(id ModID, active bool) error {
	entry, ok := r.mods[id]
	if !ok {
		return &MissingModsError{IDs: []ModID{id}}
	}
	entry.Active = active
	return nil
}

// SetModsActive sets the activation state of every mod in ids.
//
// All ids are validated before anything is changed. If any are unknown, a
// *MissingModsError listing every unknown id (in input order) is returned
// and no entry is modified.
func (r *ModRegistry) SetModsActive(ids []ModID, active bool) error {
	var missing []ModID
	for _, id := range ids {
		if _, ok := r.mods[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return &MissingModsError{IDs: missing}
	}

	for _, id := range ids {
		r.mods[id].Active = active
	}
	return nil
}

// SetAllModsActive sets every known mod active or inactive.
func (r *ModRegistry) SetAllModsActive(active bool) error {
	return r.SetModsActive(slices.Collect(r.Mods()), active)
}

// IsModActive reports the activation state of id and whether the mod is known.
func (r *ModRegistry) IsModActive(id ModID) (active bool, ok bool) {
	entry, ok := r.mods[id]
	if !ok {
		return false, false
	}
	return entry.Active, true
}

// Mods yields every known mod id in no particular order.
func (r *ModRegistry) Mods() iter.Seq[ModID] {
	return maps.Keys(r.mods)
}

// ActiveMods returns the sorted ids of all active mods.
func (r *ModRegistry) ActiveMods() []ModID {
	var out []ModID
	for id, entry := range r.mods {
		if entry.Active {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}

// Len returns the number of known mods.
func (r *ModRegistry) Len() int { return len(r.mods) }

// MarshalJSON writes {"mods": {...}} merged with the preserved top-level fields.
func (r *ModRegistry) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(r.extra)+1)
	for k, v := range r.extra {
		out[k] = v
	}
	mods := r.mods
	if mods == nil {
		mods = map[ModID]*ModEntry{}
	}
	b, err := json.Marshal(mods)
	if err != nil {
		return nil, err
	}
	out[modsField] = b
	return json.Marshal(out)
}

// UnmarshalJSON mirrors MarshalJSON. A document without a "mods" object is rejected.
func (r *ModRegistry) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	modsRaw, ok := raw[modsField]
	if !ok {
		return errors.New(`mod database is missing the "mods" field`)
	}
	mods := map[ModID]*ModEntry{}
	if err := json.Unmarshal(modsRaw, &mods); err != nil {
		return err
	}
	for id, entry := range mods {
		if entry == nil {
			return fmt.Errorf("mod %q has no entry data", id)
		}
	}
	delete(raw, modsField)
	r.mods = mods
	r.extra = raw
	return nil
}
