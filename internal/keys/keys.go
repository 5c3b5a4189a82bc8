package keys

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"sort"
	"strings"
)

// EntityKey produces the canonical "<kind>:<id>" key of a combatant.
// Kind is lower-cased and both parts are trimmed.
func EntityKey(kind, id string) string {
	return strings.ToLower(strings.TrimSpace(kind)) + ":" + strings.TrimSpace(id)
}

// MatchupKey produces an order-insensitive key for two entity keys, so
// "A vs B" and "B vs A" share the same history bucket.
func MatchupKey(a, b string) string {
	parts := []string{a, b}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}

// NarrationKey hashes the parts of a narration request into a stable key.
// Parts are length-prefixed so ("ab","c") and ("a","bc") never collide.
func NarrationKey(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		var n [8]byte
		binary.BigEndian.PutUint64(n[:], uint64(len(p)))
		h.Write(n[:])
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}
