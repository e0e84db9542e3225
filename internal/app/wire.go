package app

import (
	"fmt"
	"log/slog"

	"beammm/internal/domain"
	"beammm/internal/game"
	modsvc "beammm/internal/services/mods"
	presetsvc "beammm/internal/services/preset"
	"beammm/internal/store"
)

// Wire bundles all directories, stores and services for the CLI.
type Wire struct {
	DataDir    string
	Version    string
	ModsDir    string
	Home       string
	PresetsDir string

	Registry domain.RegistryStore
	Store    domain.PresetStore
	Mods     domain.ModService
	Presets  domain.PresetService
}

// NewWire constructs the dependency graph from cfg. dirs supplies the
// per-user base directories used when cfg leaves a directory unset.
func NewWire(cfg Config, dirs game.Dirs, log *slog.Logger) (*Wire, error) {
	home := cfg.Home
	if home == "" {
		h, err := dirs.HomeDir()
		if err != nil {
			return nil, err
		}
		home = h
	}
	presetsDir, err := game.PresetsDir(home)
	if err != nil {
		return nil, fmt.Errorf("presets dir: %w", err)
	}

	dataDir, err := dirs.DataDir(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	version, err := game.Version(dataDir)
	if err != nil {
		return nil, err
	}
	modsDir, err := game.ModsDir(dataDir, version)
	if err != nil {
		return nil, err
	}
	log.Debug("directories resolved",
		"data_dir", dataDir, "version", version, "mods_dir", modsDir, "presets_dir", presetsDir)

	// File-based stores
	registryStore := store.NewRegistryFileStore(modsDir)
	presetStore := store.NewPresetFileStore(presetsDir)

	return &Wire{
		DataDir:    dataDir,
		Version:    version,
		ModsDir:    modsDir,
		Home:       home,
		PresetsDir: presetsDir,
		Registry:   registryStore,
		Store:      presetStore,
		Mods:       modsvc.New(registryStore, log),
		Presets:    presetsvc.New(presetStore, log),
	}, nil
}
