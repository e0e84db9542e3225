// Package app wires application dependencies for the CLI.
//
// It resolves the game and beammm directories from Config, builds the
// concrete stores and the high-level services, and exposes them via Wire.
// App bundles the services commands use together with the end-of-command
// commit step (reconcile presets, recover failed ones, save the registry).
package app
