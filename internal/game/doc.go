// Package game locates BeamNG.drive's directories on disk.
//
// The game keeps its user data (mods, settings) in a per-user data directory,
// with one subdirectory per major.minor game version. The active mods
// directory is therefore <data dir>/<version>/mods. beammm's own state lives
// next to it in a BeamMM directory.
package game
