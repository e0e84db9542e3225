// Package commands defines the beammm CLI and wires dependencies for subcommands.
//
// Commands
//
//   - mods list                  List installed mods and their state
//   - mods enable|disable        Switch mods on or off ("all" for every mod)
//   - preset list|show           Inspect stored presets
//   - preset create|delete       Manage presets
//   - preset add|remove          Edit a preset's mods
//   - preset enable|disable      Switch a preset on or off
//   - apply                      Reconcile enabled presets into the mod database
//   - fingerprint                Print a fingerprint of the active mod set
//
// # Implementation
//
// The root command resolves configuration and the game directories and
// builds the dependency graph (stores, services) before any subcommand runs.
// After a state-changing subcommand succeeds, every enabled preset is
// reconciled into the mod database, failed presets are disabled, and the
// database is saved.
package commands
