package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math/rand"
	"strconv"
	"strings"
)

// RNG wraps a seeded math/rand.Rand. Each battle owns its own RNG; nothing
// in this package touches the global source.
type RNG struct {
	seed int64
	src  *rand.Rand
}

// NewRNG creates a new deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 { return r.seed }

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.src.Float64()
}

// Chance reports true with probability p. It always consumes one draw so
// the roll sequence does not depend on the configured probabilities.
func (r *RNG) Chance(p float64) bool {
	return r.Float64() < p
}

// SeedFromString turns a caller supplied seed into an RNG seed. Decimal
// integers are used as-is so a result's Seed can be posted back verbatim;
// any other text is hashed with FNV-1a.
func SeedFromString(s string) int64 {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return int64(h.Sum64())
}

// NewSeed generates a seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// resolveSeed picks the seed for a battle: the caller's seed when present,
// otherwise a fresh random one.
func resolveSeed(rngSeed string) (int64, error) {
	if strings.TrimSpace(rngSeed) != "" {
		return SeedFromString(rngSeed), nil
	}
	return NewSeed()
}
