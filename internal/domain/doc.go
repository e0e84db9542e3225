// Package domain defines the mod registry, presets and the contracts shared
// across the app. The concrete types live in the types subpackage and the
// store and service contracts in the interfaces subpackage; both are
// re-exported here so callers can import a single package.
package domain
