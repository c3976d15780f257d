// SPDX-License-Identifier: MIT
// Package: seedmock/mersenne
//
// registry.go — seed → *Engine sharing with a bounded lifecycle.
//
// Contract:
//   • FromSeed is create-or-fetch under one lock: for a given seed at most one
//     live engine is registered at any time.
//   • Capacity is fixed at construction (LRU). When a new seed would exceed
//     it, the least recently fetched seed is dropped. Holders of a dropped
//     engine keep using it; the next FromSeed for that seed starts a fresh
//     sequence.
//   • Evictions are logged at debug level.

package mersenne

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
)

// DefaultRegistryCapacity bounds the process-wide registry.
const DefaultRegistryCapacity = 1024

const methodNewRegistry = "NewRegistry"

// Registry shares one Engine per seed.
type Registry struct {
	// mu serializes every cache access so create-or-fetch stays atomic.
	mu       sync.Mutex
	engines  *lru.Cache[uint32, *Engine]
	capacity int
	logger   logrus.FieldLogger
}

// RegistryOption customizes a Registry before its cache is allocated.
type RegistryOption func(*Registry)

// WithRegistryLogger routes registry lifecycle logs to logger.
// Panics on nil, like every other option constructor in this module.
func WithRegistryLogger(logger logrus.FieldLogger) RegistryOption {
	if logger == nil {
		panic("mersenne: WithRegistryLogger(nil)")
	}
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry returns an empty registry holding at most capacity engines.
func NewRegistry(capacity int, opts ...RegistryOption) (*Registry, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%s: capacity=%d: %w", methodNewRegistry, capacity, ErrInvalidCapacity)
	}

	r := &Registry{
		capacity: capacity,
		logger:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}

	cache, err := lru.NewWithEvict[uint32, *Engine](capacity, r.onEvict)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewRegistry, err)
	}
	r.engines = cache

	return r, nil
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the process-wide registry used when a Source is
// built without WithRegistry.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		// DefaultRegistryCapacity is positive, so construction cannot fail.
		defaultRegistry, _ = NewRegistry(DefaultRegistryCapacity)
	})

	return defaultRegistry
}

// FromSeed returns the engine registered for seed, creating it on first use.
func (r *Registry) FromSeed(seed uint32) *Engine {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.engines.Get(seed); ok {
		return e
	}

	e := New(seed)
	r.engines.Add(seed, e)
	r.logger.WithField("seed", seed).Debug("mersenne: engine created")

	return e
}

// Contains reports whether seed currently has a registered engine. It does not
// refresh the seed's recency.
func (r *Registry) Contains(seed uint32) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.engines.Contains(seed)
}

// Len returns the number of registered engines.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.engines.Len()
}

// Capacity returns the maximum number of registered engines.
func (r *Registry) Capacity() int {
	return r.capacity
}

// Purge drops every registered engine.
func (r *Registry) Purge() {
	r.mu.Lock()
	r.engines.Purge()
	r.mu.Unlock()
}

func (r *Registry) onEvict(seed uint32, _ *Engine) {
	r.logger.WithFields(logrus.Fields{
		"seed":     seed,
		"capacity": r.capacity,
	}).Debug("mersenne: engine evicted")
}
