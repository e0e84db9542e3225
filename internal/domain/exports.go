package domain

import (
	interfaces "beammm/internal/domain/interfaces"
	types "beammm/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ModID              = types.ModID
	PresetName         = types.PresetName
	Fingerprint        = types.Fingerprint
	ModEntry           = types.ModEntry
	ModRegistry        = types.ModRegistry
	Preset             = types.Preset
	Activator          = types.Activator
	ModStatus          = types.ModStatus
	PresetStatus       = types.PresetStatus
	MissingModsError   = types.MissingModsError
	PresetsFailedError = types.PresetsFailedError
	DirNotFoundError   = types.DirNotFoundError
	MissingPresetError = types.MissingPresetError
	PresetExistsError  = types.PresetExistsError
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	RegistryStore = interfaces.RegistryStore
	PresetStore   = interfaces.PresetStore
	ModService    = interfaces.ModService
	PresetService = interfaces.PresetService
)

// Sentinel errors re-exported from the types subpackage.
var (
	ErrGameDirNotFound     = types.ErrGameDirNotFound
	ErrMissingLocalAppData = types.ErrMissingLocalAppData
	ErrVersion             = types.ErrVersion
	ErrInvalidPresetName   = types.ErrInvalidPresetName
)

// Constructors re-exported from the types subpackage.
var (
	NewModRegistry = types.NewModRegistry
	NewPreset      = types.NewPreset
	ModIDs         = types.ModIDs
)
