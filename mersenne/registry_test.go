package mersenne_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/seedmock/mersenne"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistry_CacheIdentity verifies FromSeed returns one shared instance and
// that advancing it through one reference advances the other.
func TestRegistry_CacheIdentity(t *testing.T) {
	reg, err := mersenne.NewRegistry(8)
	require.NoError(t, err)

	a := reg.FromSeed(100)
	b := reg.FromSeed(100)
	require.Same(t, a, b, "same seed must yield the same engine")

	fresh := mersenne.New(100)
	_ = fresh.Uint32()
	_ = a.Uint32()
	assert.Equal(t, fresh.Uint32(), b.Uint32(), "b continues where a stopped")
}

// TestRegistry_SeedKeyStable verifies an engine fetched for a seed always
// carries that seed's state, even after its holders re-seed elsewhere.
func TestRegistry_SeedKeyStable(t *testing.T) {
	reg, err := mersenne.NewRegistry(8)
	require.NoError(t, err)

	e := reg.FromSeed(100)
	src := mersenne.NewSource(mersenne.WithSeed(100), mersenne.WithRegistry(reg))
	src.Seed(5)
	rs := mersenne.NewRandSource(100)
	rs.Seed(5)

	got := reg.FromSeed(100)
	require.Same(t, e, got)
	assert.Equal(t, uint32(100), got.InitialSeed())
	assert.Equal(t, uint32(2333906440), got.Uint32(), "first draw of seed 100")
	assert.Equal(t, uint32(5), src.Engine().InitialSeed())
}

// TestRegistry_InvalidCapacity checks capacity validation.
func TestRegistry_InvalidCapacity(t *testing.T) {
	for _, c := range []int{0, -1} {
		_, err := mersenne.NewRegistry(c)
		assert.ErrorIs(t, err, mersenne.ErrInvalidCapacity, "capacity %d", c)
	}
}

// TestRegistry_Eviction verifies the LRU policy: the least recently fetched
// seed is dropped, logged, and recreated from scratch on its next fetch.
func TestRegistry_Eviction(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	reg, err := mersenne.NewRegistry(2, mersenne.WithRegistryLogger(logger))
	require.NoError(t, err)

	one := reg.FromSeed(1)
	_ = one.Uint32() // advance the engine for seed 1
	reg.FromSeed(2)
	reg.FromSeed(1) // refresh 1, so 2 becomes the eviction candidate
	reg.FromSeed(3)

	assert.Equal(t, 2, reg.Len())
	assert.True(t, reg.Contains(1))
	assert.False(t, reg.Contains(2))
	assert.True(t, reg.Contains(3))

	var evicted bool
	for _, entry := range hook.AllEntries() {
		if entry.Message == "mersenne: engine evicted" && entry.Data["seed"] == uint32(2) {
			evicted = true
		}
	}
	assert.True(t, evicted, "eviction of seed 2 must be logged")

	// Seed 1 was never evicted: it keeps its advanced state.
	assert.Same(t, one, reg.FromSeed(1))

	reg.Purge()
	assert.Equal(t, 0, reg.Len())
	again := reg.FromSeed(1)
	assert.NotSame(t, one, again)
	assert.Equal(t, mersenne.New(1).Uint32(), again.Uint32(), "recreated engine starts a fresh sequence")
}

// TestRegistry_ConcurrentFromSeed ensures concurrent first creation yields a
// single instance.
func TestRegistry_ConcurrentFromSeed(t *testing.T) {
	reg, err := mersenne.NewRegistry(16)
	require.NoError(t, err)

	const workers = 64
	got := make([]*mersenne.Engine, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			got[i] = reg.FromSeed(555)
			_ = got[i].Uint32()
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		require.Same(t, got[0], got[i])
	}
	assert.Equal(t, 1, reg.Len())
}

// TestRegistry_ConcurrentInspection mixes lookups, inspection and purges.
func TestRegistry_ConcurrentInspection(t *testing.T) {
	reg, err := mersenne.NewRegistry(4)
	require.NoError(t, err)

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			seed := uint32(i % 8)
			reg.FromSeed(seed)
			_ = reg.Contains(seed)
			assert.LessOrEqual(t, reg.Len(), reg.Capacity())
			if i%10 == 0 {
				reg.Purge()
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, reg.Len(), 4)
}

// TestDefaultRegistry verifies the process-wide registry is a singleton.
func TestDefaultRegistry(t *testing.T) {
	assert.Same(t, mersenne.DefaultRegistry(), mersenne.DefaultRegistry())
	assert.Equal(t, mersenne.DefaultRegistryCapacity, mersenne.DefaultRegistry().Capacity())
}
