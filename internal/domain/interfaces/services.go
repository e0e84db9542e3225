package interfaces

import domaintypes "beammm/internal/domain/types"

// ModService works on the registry loaded for the current invocation.
type ModService interface {
	Registry() (*domaintypes.ModRegistry, error)
	ListMods() ([]domaintypes.ModStatus, error)
	SetModsActive(ids []domaintypes.ModID, active bool) error
	SetAllModsActive(active bool) error
	FingerprintActive() (domaintypes.Fingerprint, error)
	SaveRegistry() error
}

// PresetService manages stored presets and reconciles them into a registry.
type PresetService interface {
	ListPresets() ([]domaintypes.PresetStatus, error)
	ShowPreset(name domaintypes.PresetName) (*domaintypes.Preset, error)
	CreatePreset(name domaintypes.PresetName, mods []domaintypes.ModID) (*domaintypes.Preset, error)
	DeletePreset(name domaintypes.PresetName) error
	AddMods(name domaintypes.PresetName, mods []domaintypes.ModID) error
	RemoveMods(name domaintypes.PresetName, mods []domaintypes.ModID) error
	EnablePreset(name domaintypes.PresetName) error
	DisablePreset(name domaintypes.PresetName, registry domaintypes.Activator) error
	ApplyPresets(registry domaintypes.Activator) error
}
