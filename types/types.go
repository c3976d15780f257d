package types

import "github.com/katalvlaran/seedmock/mersenne"

// Types generates base values from a shared Source.
type Types struct {
	src *mersenne.Source
}

// New returns a Types drawing from src. A nil src binds a fresh,
// entropy-seeded Source on the default registry.
func New(src *mersenne.Source) *Types {
	if src == nil {
		src = mersenne.NewSource()
	}

	return &Types{src: src}
}

// Source returns the Source the generator draws from.
func (t *Types) Source() *mersenne.Source {
	return t.src
}

// Seed re-seeds the underlying Source, and with it every facade sharing it.
func (t *Types) Seed(value uint32) {
	t.src.Seed(value)
}

func (t *Types) engine() *mersenne.Engine {
	return t.src.Engine()
}
