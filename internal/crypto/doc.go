// Package crypto holds the hashing used by beammm.
//
// Fingerprint condenses the set of active mods into a short hex string so two
// setups can be compared at a glance (for example before and after switching
// presets, or across machines).
package crypto
