package mersenne_test

import (
	"testing"

	"github.com/katalvlaran/seedmock/mersenne"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_SharedSeedSharesEngine(t *testing.T) {
	reg, err := mersenne.NewRegistry(4)
	require.NoError(t, err)

	a := mersenne.NewSource(mersenne.WithSeed(9), mersenne.WithRegistry(reg))
	b := mersenne.NewSource(mersenne.WithSeed(9), mersenne.WithRegistry(reg))
	require.Same(t, a.Engine(), b.Engine())
	assert.Equal(t, uint32(9), a.SeedValue())
	assert.Same(t, reg, a.Registry())
}

func TestSource_SeedRebinds(t *testing.T) {
	reg, err := mersenne.NewRegistry(4)
	require.NoError(t, err)

	s := mersenne.NewSource(mersenne.WithSeed(1), mersenne.WithRegistry(reg))
	first := s.Engine()

	s.Seed(2)
	assert.NotSame(t, first, s.Engine())
	assert.Same(t, reg.FromSeed(2), s.Engine())
	assert.Equal(t, uint32(2), s.SeedValue())
}

func TestSource_EntropySeedWhenUnset(t *testing.T) {
	reg, err := mersenne.NewRegistry(4)
	require.NoError(t, err)

	s := mersenne.NewSource(mersenne.WithRegistry(reg))
	assert.True(t, reg.Contains(s.SeedValue()))
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { mersenne.WithRegistry(nil) })
	assert.Panics(t, func() { mersenne.WithLogger(nil) })
	assert.Panics(t, func() { mersenne.WithRegistryLogger(nil) })
}
