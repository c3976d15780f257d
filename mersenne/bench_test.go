package mersenne_test

import (
	"testing"

	"github.com/katalvlaran/seedmock/mersenne"
)

// BenchmarkEngine_Uint32 measures a raw draw, including the amortized twist.
func BenchmarkEngine_Uint32(b *testing.B) {
	e := mersenne.New(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Uint32()
	}
}

// BenchmarkRegistry_FromSeedHit measures the shared-instance lookup path.
func BenchmarkRegistry_FromSeedHit(b *testing.B) {
	reg, err := mersenne.NewRegistry(mersenne.DefaultRegistryCapacity)
	if err != nil {
		b.Fatalf("NewRegistry failed: %v", err)
	}
	reg.FromSeed(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = reg.FromSeed(1)
	}
}
