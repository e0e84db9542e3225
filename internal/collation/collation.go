// Package collation orders user-visible names the way people expect to read
// them: case-insensitively and with embedded numbers compared by value
// ("mod2" before "mod10").
package collation

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort orders items in place by the collation order of key(item).
func Sort[T any](items []T, key func(T) string) {
	c := collate.New(language.Und, collate.IgnoreCase, collate.Numeric)
	slices.SortStableFunc(items, func(a, b T) int {
		return c.CompareString(key(a), key(b))
	})
}
