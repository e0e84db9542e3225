package interfaces

import domaintypes "beammm/internal/domain/types"

// RegistryStore loads and saves the game's mod database.
type RegistryStore interface {
	LoadRegistry() (*domaintypes.ModRegistry, error)
	SaveRegistry(registry *domaintypes.ModRegistry) error
}

// PresetStore persists presets by name. ListPresets returns names in no
// particular order.
type PresetStore interface {
	ListPresets() ([]domaintypes.PresetName, error)
	LoadPreset(name domaintypes.PresetName) (*domaintypes.Preset, error)
	SavePreset(preset *domaintypes.Preset) error
	DeletePreset(name domaintypes.PresetName) error
	PresetExists(name domaintypes.PresetName) (bool, error)
}
