// Package random provides a deterministic pseudo-random source keyed by an
// integer seed. The same seed produces the same sequence on every platform,
// which is what makes per-user mock data reproducible across sessions.
package random

import "unicode/utf16"

const (
	modulus    = 2147483647 // 2^31 - 1
	multiplier = 16807
)

// SeededRandom is a multiplicative linear congruential generator
// (Park-Miller). Not safe for concurrent use.
type SeededRandom struct {
	seed int64
}

// New returns a generator for the given seed. Seeds that reduce to zero or
// below are remapped to a valid positive seed so the stream never degenerates
// to all zeros.
func New(seed int64) *SeededRandom {
	seed %= modulus
	if seed <= 0 {
		seed += modulus - 1
	}
	return &SeededRandom{seed: seed}
}

// Next advances the generator and returns a value in [0, 1).
func (r *SeededRandom) Next() float64 {
	r.seed = (r.seed * multiplier) % modulus
	return float64(r.seed-1) / float64(modulus-1)
}

// NextInt returns a uniform integer in [min, max], inclusive on both ends.
func (r *SeededRandom) NextInt(min, max int) int {
	return int(r.Next()*float64(max-min+1)) + min
}

// NextFloat returns a uniform value in [min, max).
func (r *SeededRandom) NextFloat(min, max float64) float64 {
	return r.Next()*(max-min) + min
}

// Choice returns a uniformly chosen element of items. It panics on an empty
// slice, same as indexing would.
func Choice[T any](r *SeededRandom, items []T) T {
	return items[r.NextInt(0, len(items)-1)]
}

// SeedFromUserID derives a generator seed from a user identifier. It is a
// polynomial hash over the UTF-16 code units of the string, wrapped to a
// signed 32-bit integer and taken as an absolute value, so the same
// identifier always maps to the same seed regardless of its contents.
func SeedFromUserID(userID string) int64 {
	var hash int32
	for _, unit := range utf16.Encode([]rune(userID)) {
		hash = hash*31 + int32(unit)
	}
	v := int64(hash)
	if v < 0 {
		v = -v
	}
	return v
}
