// Package preset implements the preset use cases: creating, editing,
// enabling and disabling stored presets, and reconciling them into the mod
// registry.
//
// Enabling a preset only records intent; the mods follow on the next
// ApplyPresets. Disabling switches the preset's mods off at once, and the
// next ApplyPresets switches back on any of them that another enabled preset
// still needs.
package preset
