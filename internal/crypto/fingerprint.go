package crypto

import (
	"encoding/hex"
	"slices"

	"golang.org/x/crypto/blake2b"

	"beammm/internal/domain"
)

// fingerprintSize is the number of digest bytes kept (20 hex chars).
const fingerprintSize = 10

// Fingerprint returns a short hex fingerprint of a set of mod ids.
//
// The ids are sorted and de-duplicated before hashing with BLAKE2b-256, so
// the result depends only on the set, not on order.
func Fingerprint(ids []domain.ModID) domain.Fingerprint {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	h, _ := blake2b.New256(nil) // only fails for oversized keys
	for _, id := range sorted {
		h.Write([]byte(id))
		h.Write([]byte{0})
	}
	sum := h.Sum(nil)
	return domain.Fingerprint(hex.EncodeToString(sum[:fingerprintSize]))
}
