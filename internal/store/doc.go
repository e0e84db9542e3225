// Package store provides file-based persistence for beammm.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising data as JSON on disk. Writes go through a temp file and a
// rename so a crash never leaves a half-written file behind. All methods are
// concurrency-safe via internal locking.
//
// The package includes stores for:
//   - The game's mod database, db.json in the mods directory (RegistryFileStore)
//   - User presets, one <name>.json per preset (PresetFileStore)
package store
