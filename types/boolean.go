package types

import "fmt"

const (
	methodBoolean = "BooleanLikelihood"

	minLikelihood = 0.0
	maxLikelihood = 100.0
)

// Boolean draws a boolean with a likelihood that is itself drawn first, as an
// integer in [0, 100]. Both draws come from the seeded engine, so the result
// is reproducible.
func (t *Types) Boolean() bool {
	e := t.engine()
	likelihood := Draw(e, NumberInit{Min: minLikelihood, Max: maxLikelihood, Precision: 1})

	return e.Real2()*100 < likelihood
}

// BooleanLikelihood returns true with the given percentage probability.
func (t *Types) BooleanLikelihood(likelihood float64) (bool, error) {
	if !(likelihood >= minLikelihood && likelihood <= maxLikelihood) {
		return false, fmt.Errorf("%s: likelihood=%v: %w", methodBoolean, likelihood, ErrInvalidLikelihood)
	}

	return t.engine().Real2()*100 < likelihood, nil
}
