package random_test

import (
	"testing"

	"github.com/katalvlaran/seedmock/mersenne"
	"github.com/katalvlaran/seedmock/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRandom(t testing.TB, seed uint32) *random.Random {
	t.Helper()
	reg, err := mersenne.NewRegistry(16)
	require.NoError(t, err)

	return random.New(mersenne.NewSource(mersenne.WithSeed(seed), mersenne.WithRegistry(reg)))
}

// TestPick_Clamp verifies the returned size is min(count, len) and 0 for count < 0.
func TestPick_Clamp(t *testing.T) {
	r := newRandom(t, 1)
	src := []string{"a", "b", "c", "d"}

	cases := []struct {
		count, want int
	}{
		{-5, 0}, {0, 0}, {1, 1}, {3, 3}, {4, 4}, {10, 4},
	}
	for _, tc := range cases {
		assert.Len(t, random.Pick(r, src, tc.count), tc.want, "count=%d", tc.count)
	}
}

// TestPick_DistinctAndSourceUntouched verifies picks come without replacement
// and the caller's slice is left as is.
func TestPick_DistinctAndSourceUntouched(t *testing.T) {
	r := newRandom(t, 2)
	src := []int{1, 2, 3, 4, 5, 6, 7, 8}
	orig := append([]int(nil), src...)

	for i := 0; i < 200; i++ {
		got := random.Pick(r, src, 5)
		seen := map[int]bool{}
		for _, v := range got {
			require.Contains(t, src, v)
			require.False(t, seen[v], "duplicate %d in %v", v, got)
			seen[v] = true
		}
	}
	assert.Equal(t, orig, src)
}

// TestPick_Reproducible pins the draw sequence for seed 100.
func TestPick_Reproducible(t *testing.T) {
	r := newRandom(t, 100)
	assert.Equal(t, []string{"a", "e", "c"}, random.Pick(r, []string{"a", "b", "c", "d", "e"}, 3))

	v, err := random.PickOne(r, []string{"x", "y", "z"})
	require.NoError(t, err)
	assert.Equal(t, "y", v)
}

// TestPickAny_Size checks the omitted-count call shape.
func TestPickAny_Size(t *testing.T) {
	r := newRandom(t, 3)
	src := []string{"a", "b", "c"}
	sizes := map[int]bool{}
	for i := 0; i < 300; i++ {
		got := random.PickAny(r, src)
		require.GreaterOrEqual(t, len(got), 1)
		require.LessOrEqual(t, len(got), len(src))
		sizes[len(got)] = true
	}
	assert.Len(t, sizes, 3, "every size in [1, len] should appear")
	assert.Empty(t, random.PickAny(r, []string{}))
}

// TestPickOne covers membership, coverage and the empty-source error.
func TestPickOne(t *testing.T) {
	r := newRandom(t, 4)
	src := []string{"x", "y", "z"}
	seen := map[string]bool{}
	for i := 0; i < 300; i++ {
		v, err := random.PickOne(r, src)
		require.NoError(t, err)
		seen[v] = true
	}
	assert.Len(t, seen, 3)

	_, err := random.PickOne(r, []int{})
	assert.ErrorIs(t, err, random.ErrEmptySource)
}

// TestSeed_SharedSource verifies a Random re-seeded through its source follows
// the registry's engine for the new seed.
func TestSeed_SharedSource(t *testing.T) {
	r := newRandom(t, 5)
	r.Seed(6)
	assert.Equal(t, uint32(6), r.Source().SeedValue())
}
