package types

// ModID identifies a mod by the key the game uses for it in db.json.
type ModID string

// String returns the string form of the mod id.
func (id ModID) String() string { return string(id) }

// PresetName identifies a stored preset. It doubles as the storage key.
type PresetName string

// String returns the string form of the preset name.
func (n PresetName) String() string { return string(n) }

// ModIDs converts plain strings (e.g. CLI arguments) to mod ids.
func ModIDs(ss []string) []ModID {
	ids := make([]ModID, len(ss))
	for i, s := range ss {
		ids[i] = ModID(s)
	}
	return ids
}
