package mersenne

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Source is a re-seedable binding between a Registry and a seed.
//
// Facades (types, random, lorem, headers, ...) keep a *Source rather than an
// *Engine. Seeding the Source once re-binds every facade constructed from it,
// and two Sources with the same seed on the same Registry share one Engine.
type Source struct {
	mu       sync.RWMutex
	registry *Registry
	seed     uint32
	engine   *Engine
	logger   logrus.FieldLogger
}

// NewSource resolves opts and binds the engine for the chosen seed.
func NewSource(opts ...Option) *Source {
	cfg := newSourceConfig(opts...)

	return &Source{
		registry: cfg.registry,
		seed:     cfg.seed,
		engine:   cfg.registry.FromSeed(cfg.seed),
		logger:   cfg.logger,
	}
}

// Engine returns the currently bound engine.
func (s *Source) Engine() *Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.engine
}

// Seed re-binds the Source to the registry's engine for value.
func (s *Source) Seed(value uint32) {
	e := s.registry.FromSeed(value)

	s.mu.Lock()
	s.seed = value
	s.engine = e
	s.mu.Unlock()

	s.logger.WithField("seed", value).Debug("mersenne: source re-seeded")
}

// SeedValue returns the seed the Source is currently bound to.
func (s *Source) SeedValue() uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.seed
}

// Registry returns the registry the Source draws engines from.
func (s *Source) Registry() *Registry {
	return s.registry
}
