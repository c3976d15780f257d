package random

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seedmock/mersenne"
	"github.com/katalvlaran/seedmock/types"
)

// ErrEmptySource indicates PickOne was called on an empty slice.
var ErrEmptySource = errors.New("random: source is empty")

const methodPickOne = "PickOne"

// fraction is the real-valued draw Pick uses to choose a swap index.
var fraction = types.NumberInit{Min: 0, Max: 0.99, Precision: 0.01}

// Random selects elements using a shared Source.
type Random struct {
	src *mersenne.Source
}

// New returns a Random drawing from src. A nil src binds a fresh,
// entropy-seeded Source on the default registry.
func New(src *mersenne.Source) *Random {
	if src == nil {
		src = mersenne.NewSource()
	}

	return &Random{src: src}
}

// Seed re-seeds the underlying Source.
func (r *Random) Seed(value uint32) {
	r.src.Seed(value)
}

// Source returns the Source the sampler draws from.
func (r *Random) Source() *mersenne.Source {
	return r.src
}

// PickOne returns a uniformly chosen element of source.
func PickOne[T any](r *Random, source []T) (T, error) {
	if len(source) == 0 {
		var zero T
		return zero, fmt.Errorf("%s: %w", methodPickOne, ErrEmptySource)
	}

	i := types.Draw(r.src.Engine(), types.NumberInit{Min: 0, Max: float64(len(source) - 1), Precision: 1})

	return source[int(i)], nil
}

// Pick returns count distinct positions of source in random order. count is
// clamped to [0, len(source)]. The source slice is not modified.
func Pick[T any](r *Random, source []T, count int) []T {
	if count > len(source) {
		count = len(source)
	}
	if count < 0 {
		count = 0
	}

	return shuffleTail(r.src.Engine(), source, count)
}

// PickAny picks a random number of elements, between 1 and len(source).
func PickAny[T any](r *Random, source []T) []T {
	if len(source) == 0 {
		return []T{}
	}

	e := r.src.Engine()
	count := int(types.Draw(e, types.NumberInit{Min: 1, Max: float64(len(source)), Precision: 1}))

	return shuffleTail(e, source, count)
}

// shuffleTail runs a partial Fisher–Yates over a copy of source and returns
// the last count elements. 0 ≤ count ≤ len(source).
func shuffleTail[T any](e *mersenne.Engine, source []T, count int) []T {
	cp := make([]T, len(source))
	copy(cp, source)

	min := len(cp) - count
	for i := len(cp) - 1; i >= min; i-- {
		j := int(float64(i+1) * types.Draw(e, fraction))
		cp[i], cp[j] = cp[j], cp[i]
	}

	return cp[min:]
}
