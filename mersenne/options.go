// SPDX-License-Identifier: MIT
// Package: seedmock/mersenne
//
// options.go — functional options for NewSource.
//
// Contract:
//   • Options are applied in order; last wins.
//   • Option constructors panic on nil arguments. Draws never panic.
//   • Without WithSeed the seed comes from EntropySeed.
//   • Without WithRegistry the process-wide DefaultRegistry is used.

package mersenne

import "github.com/sirupsen/logrus"

// Option customizes a Source before it binds its first engine.
type Option func(*sourceConfig)

type sourceConfig struct {
	seed     uint32
	seeded   bool
	registry *Registry
	logger   logrus.FieldLogger
}

func newSourceConfig(opts ...Option) sourceConfig {
	cfg := sourceConfig{
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = DefaultRegistry()
	}
	if !cfg.seeded {
		cfg.seed = EntropySeed()
	}

	return cfg
}

// WithSeed fixes the seed, making every draw reproducible.
func WithSeed(seed uint32) Option {
	return func(c *sourceConfig) {
		c.seed = seed
		c.seeded = true
	}
}

// WithRegistry binds the Source to an explicit registry instead of the
// process-wide one. Panics on nil.
func WithRegistry(r *Registry) Option {
	if r == nil {
		panic("mersenne: WithRegistry(nil)")
	}
	return func(c *sourceConfig) {
		c.registry = r
	}
}

// WithLogger sets the logger used for re-seed events. Panics on nil.
func WithLogger(logger logrus.FieldLogger) Option {
	if logger == nil {
		panic("mersenne: WithLogger(nil)")
	}
	return func(c *sourceConfig) {
		c.logger = logger
	}
}
