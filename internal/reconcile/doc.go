// Package reconcile recomputes mod activation from the union of all enabled
// presets.
//
// A pass only ever switches mods on. Each enabled preset is applied as one
// all-or-nothing batch, so the final state is the same whatever order the
// presets are visited in. Presets that reference unknown mods are collected
// into a single *types.PresetsFailedError; they never block the others.
//
// Recovering from failed presets (force-disabling them) is left to the
// caller.
package reconcile
