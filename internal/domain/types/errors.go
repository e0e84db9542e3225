package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrGameDirNotFound is returned when the game's data directory cannot be
	// discovered automatically. Launching the game once usually creates it.
	ErrGameDirNotFound = errors.New("game data directory not found; try launching the game first")

	// ErrMissingLocalAppData is returned when no per-user data directory can be determined.
	ErrMissingLocalAppData = errors.New("local application data directory not found")

	// ErrVersion is returned when the game version cannot be parsed or discovered.
	ErrVersion = errors.New("unable to determine game version")

	// ErrInvalidPresetName is returned for empty names or names that would escape the presets dir.
	ErrInvalidPresetName = errors.New("invalid preset name")
)

// MissingModsError reports mod ids that are unknown to the registry.
//
// IDs keeps the order in which the ids were requested and may contain duplicates.
type MissingModsError struct {
	IDs []ModID
}

func (e *MissingModsError) Error() string {
	return "missing mods: " + joinIDs(e.IDs)
}

// PresetsFailedError is the aggregate outcome of reconciling presets when one
// or more enabled presets reference unknown mods.
//
// Both slices are sorted and free of duplicates.
type PresetsFailedError struct {
	Mods    []ModID
	Presets []PresetName
}

func (e *PresetsFailedError) Error() string {
	names := make([]string, len(e.Presets))
	for i, p := range e.Presets {
		names[i] = p.String()
	}
	return fmt.Sprintf("presets failed: %s (missing mods: %s)",
		strings.Join(names, ", "), joinIDs(e.Mods))
}

// DirNotFoundError reports a directory that was expected to exist.
type DirNotFoundError struct {
	Dir string
}

func (e *DirNotFoundError) Error() string {
	return fmt.Sprintf("directory not found: %s", e.Dir)
}

// MissingPresetError reports a preset that is not present in the presets directory.
type MissingPresetError struct {
	Dir    string
	Preset PresetName
}

func (e *MissingPresetError) Error() string {
	return fmt.Sprintf("preset %q not found in %s", e.Preset, e.Dir)
}

// PresetExistsError is returned when creating a preset whose name is taken.
type PresetExistsError struct {
	Preset PresetName
}

func (e *PresetExistsError) Error() string {
	return fmt.Sprintf("preset %q already exists", e.Preset)
}

func joinIDs(ids []ModID) string {
	ss := make([]string, len(ids))
	for i, id := range ids {
		ss[i] = id.String()
	}
	return strings.Join(ss, ", ")
}
