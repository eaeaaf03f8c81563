// Package core holds small sim-agnostic helpers shared by the binaries.
package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding.
type RNG struct {
	seed int64
	r    *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed. A zero
// seed is replaced with the wall clock, so unseeded runs differ.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{seed: seed, r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed returns the seed the generator was built with, for reporting
// reproducible runs.
func (r *RNG) Seed() int64 { return r.seed }

// Derive returns an independent generator for substream n. The same
// seed and n always yield the same stream.
func (r *RNG) Derive(n int64) *RNG {
	return &RNG{seed: r.seed, r: rand.New(rand.NewPCG(uint64(r.seed), uint64(n)))}
}

// IntN returns a uniform int in [0, n).
func (r *RNG) IntN(n int) int {
	return r.r.IntN(n)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
