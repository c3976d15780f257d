// Package mersenne implements the seeded MT19937 engine every seedmock
// generator draws from, together with the registry that shares one engine
// per seed and the Source binding facades use to (re)seed themselves.
//
// What is in here?
//
//	Engine   — 32-bit MT19937 (624-word state, init_genrand seeding,
//	           twist every 624 draws, tempering on output).
//	Registry — seed → *Engine map with atomic create-or-fetch and an LRU
//	           capacity policy.
//	Source   — re-seedable (registry, seed) binding shared by facades.
//
// Derived draws:
//
//	Uint32()          raw tempered word in [0, 2^32)
//	Real2()           Uint32() / 2^32, in [0, 1)
//	Random(max, min)  floor(Real2()*(max-min) + min)
//
// Reproducibility contract:
//
//   - A fixed seed and an identical ordered sequence of draws yields
//     bit-identical output on every run and platform.
//   - Facades holding the same Source (or the same seed on the same
//     Registry) share one engine, so a draw through one advances all.
//
// Concurrency:
//
//	A single draw is atomic (each Engine carries a mutex), so concurrent use
//	never corrupts the state array. The interleaving of draws between
//	goroutines is, of course, not reproducible; confine a seed to one
//	goroutine when the output sequence matters.
//
// The engine is a statistical PRNG for fixtures. It is not suitable for
// secrets.
package mersenne
