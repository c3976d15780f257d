package mersenne

// RandSource adapts MT19937 to math/rand.Source64.
//
// It owns its engine outright; engines shared through a Registry are never
// exposed to math/rand, whose Seed would rewrite the state behind the
// registry's key.
type RandSource struct {
	engine *Engine
}

// NewRandSource returns a source seeded with the low 32 bits of seed.
func NewRandSource(seed int64) *RandSource {
	return &RandSource{engine: New(uint32(seed))}
}

// Uint64 returns two consecutive engine words, the first as the high word.
func (s *RandSource) Uint64() uint64 {
	return s.engine.Uint64()
}

// Int63 returns a non-negative 63-bit value.
func (s *RandSource) Int63() int64 {
	return int64(s.engine.Uint64() >> 1)
}

// Seed re-initializes the private engine with the low 32 bits of seed.
func (s *RandSource) Seed(seed int64) {
	e := s.engine
	e.mu.Lock()
	e.initGenRand(uint32(seed))
	e.mu.Unlock()
}

// InitialSeed reports the seed the source was last initialized with.
func (s *RandSource) InitialSeed() uint32 {
	return s.engine.InitialSeed()
}
