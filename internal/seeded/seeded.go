// Package seeded produces reproducible pseudo-random sequences from string
// seeds.
//
// The hash and the generator are pure 32-bit integer arithmetic, so a seed
// yields the same sequence on every platform and in the browser script that
// re-renders the same decorations.
package seeded

import "unicode/utf16"

const (
	fnvOffset32 uint32 = 2166136261
	fnvPrime32  uint32 = 16777619

	weylStep uint32 = 0x6D2B79F5
)

// Hash returns the 32-bit FNV-1a hash of seed, folded over its UTF-16 code
// units.
func Hash(seed string) uint32 {
	h := fnvOffset32
	for _, unit := range utf16.Encode([]rune(seed)) {
		h ^= uint32(unit)
		h *= fnvPrime32
	}
	return h
}

// Generator returns a new value in [0,1) on every call.
type Generator func() float64

// New returns a generator whose sequence is fully determined by seed.
func New(seed uint32) Generator {
	state := seed
	return func() float64 {
		state += weylStep
		t := state
		t = (t ^ t>>15) * (t | 1)
		t ^= t + (t^t>>7)*(t|61)
		return float64(t^t>>14) / (1 << 32)
	}
}

// FromString is New(Hash(seed)).
func FromString(seed string) Generator {
	return New(Hash(seed))
}
