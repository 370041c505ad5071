// SPDX-License-Identifier: MIT
// Package: vrg/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; constructors
// themselves never panic.

package builder

import "math/rand"

// BuilderOption customizes the configuration handed to constructors.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders. Panics on nil;
// prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithKeyOffset shifts every vertex key by offset. Panics if offset < 0.
func WithKeyOffset(offset int) BuilderOption {
	if offset < 0 {
		panic("builder: WithKeyOffset(offset<0)")
	}
	return func(c *builderConfig) { c.keyOffset = offset }
}
