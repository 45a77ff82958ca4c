// Package prng centralizes deterministic random generation for the solver.
//
// Goals:
//   - Determinism: same seed => identical observation order across retries.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics; pure functions of their inputs.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines; use Derive to hand each retry attempt its own stream.
package prng

import "math/rand"

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// New returns a deterministic *rand.Rand.
// Policy: seed==0 => use defaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func New(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using a SplitMix64-style avalanche mix, so nearby parents/streams do
// not produce correlated children.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Derive creates an independent deterministic RNG stream from a base RNG and
// a stream identifier. If base==nil, defaultSeed is used as the parent.
// Otherwise base.Int63() is consumed once to decorrelate consecutive
// derivations, then mixed with the stream id via deriveSeed.
//
// Use this to give each solver retry attempt (spec.md §6.3's attempt loop)
// its own reproducible observation-order stream without sharing state.
//
// Complexity: O(1).
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
