// SPDX-License-Identifier: MIT
// Package: tourtree/partition
//
// options.go - functional options for Build.
//
// Contract:
//   • Options are functional (type Option func(*buildConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package partition

import "math/rand"

// defaultSeed is used when no option supplies a random source, and when
// WithSeed(0) is requested.
const defaultSeed int64 = 1

// Option customizes Build by mutating a buildConfig before construction.
type Option func(*buildConfig)

// buildConfig aggregates all knobs used by Build.
type buildConfig struct {
	// rng drives median and uniform draws; never nil after newBuildConfig.
	rng *rand.Rand
}

// WithSeed creates a deterministic source from seed.
// seed == 0 selects the package default seed.
func WithSeed(seed int64) Option {
	return func(c *buildConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("partition: WithRand(nil)")
	}
	return func(c *buildConfig) {
		c.rng = r
	}
}

// newBuildConfig applies opts in order (last wins) over deterministic defaults.
func newBuildConfig(opts ...Option) buildConfig {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	return cfg
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
