// Package rng centralizes deterministic random generation for the engines
// that need one: partition (initial coin flips), floorplan (move selection
// and Metropolis acceptance) and pathfind (the start vertex of each
// Hamiltonian-path search).
//
// Goals carried over from the source this was generalized from
// (tsp/rng.go in the teacher library):
//   - Determinism: same seed => identical run across platforms.
//   - Encapsulation: a single factory; no time-based sources hidden anywhere.
//   - Independent substreams via SplitMix64 mixing, so two engines sharing a
//     parent seed never draw correlated sequences.
//
// math/rand.Rand is not goroutine-safe; each engine owns exactly one
// *rand.Rand for its run (spec.md's single-threaded, synchronous model).
package rng

import "math/rand"

// DefaultSeed is the fixed "zero" seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// New returns a deterministic *rand.Rand. seed==0 selects DefaultSeed;
// any other value is used verbatim.
func New(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// Derive mixes a parent RNG and a stream identifier into a fresh, independent
// RNG stream. If base is nil, DefaultSeed stands in for the parent.
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = DefaultSeed
	} else {
		// Advances base's state, which is intentional: it decorrelates
		// repeated derivations that reuse the same stream id.
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// deriveSeed applies a SplitMix64-style finalizer to mix parent and stream
// into a well-distributed 64-bit seed.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
