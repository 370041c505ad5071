// SPDX-License-Identifier: MIT
// Package: vrg/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - rng       = nil (pure/deterministic unless seeded)
//   - keyOffset = 0

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors. It is passed by
// value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// First vertex key; index i maps to keyOffset+i.
	keyOffset int
}

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (c builderConfig) key(i int) int { return c.keyOffset + i }
