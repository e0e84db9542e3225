package types

// Fingerprint is a short digest of a set of active mods, suitable for
// comparing setups at a glance.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// ModStatus is one row of a mod listing.
type ModStatus struct {
	ID     ModID
	Active bool
}

// PresetStatus is one row of a preset listing.
type PresetStatus struct {
	Name    PresetName
	Enabled bool
	Mods    int
}
