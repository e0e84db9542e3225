// Package mods manages the game's mod database for a single invocation.
//
// The registry is loaded from its store on first use, mutated in memory by
// the activation use cases and written back by SaveRegistry.
package mods
