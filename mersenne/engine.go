// SPDX-License-Identifier: MIT
// Package: seedmock/mersenne
//
// engine.go — MT19937 core.
//
// Canonical model:
//   • State: 624 32-bit words plus the cursor mti.
//   • Seeding: init_genrand, word[i] = 1812433253*(w ^ w>>30) + i (mod 2^32).
//   • Output: twist the whole state when mti reaches 624, then temper.
//
// Every derived draw (Real2, Random, Uint64) goes through Uint32. An Engine
// cannot be re-seeded: the registry keys engines by seed, so the state an
// engine was built from never changes. RandSource owns a private engine for
// math/rand interop.

package mersenne

import (
	"math"
	"sync"
)

const (
	stateSize  = 624        // N: words in the state vector
	shiftSize  = 397        // M: middle word offset used by the twist
	matrixA    = 0x9908b0df // constant vector a
	upperMask  = 0x80000000 // most significant w-r bits
	lowerMask  = 0x7fffffff // least significant r bits
	temperingB = 0x9d2c5680
	temperingC = 0xefc60000

	initMultiplier = 1812433253

	// real2Scale is 2^-32; multiplying by it maps a word into [0, 1).
	real2Scale = 1.0 / 4294967296.0
)

// Engine is a 32-bit Mersenne Twister (MT19937).
//
// The zero value is not usable; construct engines with New or obtain the
// shared instance for a seed from a Registry.
type Engine struct {
	mu   sync.Mutex
	seed uint32
	mt   [stateSize]uint32
	mti  int
}

// New returns an engine initialized with init_genrand(seed).
func New(seed uint32) *Engine {
	e := &Engine{}
	e.initGenRand(seed)

	return e
}

// initGenRand fills the state vector from seed. Callers hold e.mu or own e
// exclusively.
func (e *Engine) initGenRand(seed uint32) {
	e.seed = seed
	e.mt[0] = seed
	for i := 1; i < stateSize; i++ {
		prev := e.mt[i-1]
		// uint32 arithmetic wraps, which is exactly the "truncate to 32 bits" step.
		e.mt[i] = initMultiplier*(prev^(prev>>30)) + uint32(i)
	}
	e.mti = stateSize
}

// InitialSeed reports the seed the engine was last initialized with.
func (e *Engine) InitialSeed() uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.seed
}

// Uint32 returns the next tempered word, uniformly distributed on
// [0, 0xffffffff].
func (e *Engine) Uint32() uint32 {
	e.mu.Lock()
	y := e.next()
	e.mu.Unlock()

	return y
}

// next draws one word. Callers hold e.mu.
func (e *Engine) next() uint32 {
	if e.mti >= stateSize {
		e.twist()
	}

	y := e.mt[e.mti]
	e.mti++

	// Tempering
	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18

	return y
}

// twist regenerates all 624 words of the state vector.
func (e *Engine) twist() {
	mag01 := [2]uint32{0, matrixA}
	var y uint32
	var kk int

	for kk = 0; kk < stateSize-shiftSize; kk++ {
		y = (e.mt[kk] & upperMask) | (e.mt[kk+1] & lowerMask)
		e.mt[kk] = e.mt[kk+shiftSize] ^ (y >> 1) ^ mag01[y&1]
	}
	for ; kk < stateSize-1; kk++ {
		y = (e.mt[kk] & upperMask) | (e.mt[kk+1] & lowerMask)
		e.mt[kk] = e.mt[kk+(shiftSize-stateSize)] ^ (y >> 1) ^ mag01[y&1]
	}
	y = (e.mt[stateSize-1] & upperMask) | (e.mt[0] & lowerMask)
	e.mt[stateSize-1] = e.mt[shiftSize-1] ^ (y >> 1) ^ mag01[y&1]

	e.mti = 0
}

// Real2 returns Uint32()/2^32, a value on the [0,1) interval.
func (e *Engine) Real2() float64 {
	return float64(e.Uint32()) * real2Scale
}

// Random returns floor(Real2()*(max-min) + min).
//
// The argument order (max first) is the one every distribution calls it
// with; min defaults are resolved by callers.
func (e *Engine) Random(max, min float64) float64 {
	return math.Floor(e.Real2()*(max-min) + min)
}

// Uint64 combines two consecutive draws, the first one as the high word.
func (e *Engine) Uint64() uint64 {
	e.mu.Lock()
	hi := e.next()
	lo := e.next()
	e.mu.Unlock()

	return uint64(hi)<<32 | uint64(lo)
}
