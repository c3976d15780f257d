// SPDX-License-Identifier: MIT
// Package: seedmock/types
//
// number.go — integer and float distributions.
//
// Contract:
//   • Defaults: min=0, max=99999, precision=1 (integer) or 0.01 (float).
//   • When max > 0 the effective upper bound is max+precision, so max is
//     reachable after the integer floor. A non-positive max stays exclusive.
//   • The draw happens on the pre-scaled grid (min/precision, max/precision);
//     the result is divided back by 1/precision. This order decides which
//     exact values are reachable and must not be rearranged.
//   • Number and Float require Min and Max on the precision grid (Min/Precision
//     and Max/Precision integral), otherwise the pre-scaled floor could land
//     outside [Min, Max]. Float noise in the scaled bounds can still move the
//     floor by one step; those results are pinned back into the range.

package types

import (
	"fmt"
	"math"

	"github.com/katalvlaran/seedmock/mersenne"
)

const (
	methodNumber = "Number"
	methodFloat  = "Float"

	defaultNumberMin       = 0.0
	defaultNumberMax       = 99999.0
	defaultNumberPrecision = 1.0
	defaultFloatPrecision  = 0.01

	// gridTolerance is the relative error accepted when checking that a
	// bound divided by the precision is a whole number.
	gridTolerance = 1e-9
)

// NumberInit describes a numeric draw.
type NumberInit struct {
	// Min is the inclusive lower bound.
	Min float64
	// Max is the upper bound, inclusive when positive.
	Max float64
	// Precision is the grid step of the result.
	Precision float64
}

// DefaultNumberInit returns {0, 99999, 1}.
func DefaultNumberInit() NumberInit {
	return NumberInit{Min: defaultNumberMin, Max: defaultNumberMax, Precision: defaultNumberPrecision}
}

// DefaultFloatInit returns {0, 99999, 0.01}.
func DefaultFloatInit() NumberInit {
	return NumberInit{Min: defaultNumberMin, Max: defaultNumberMax, Precision: defaultFloatPrecision}
}

// Draw performs the scaled draw for init on e without validating it.
// Callers guarantee Precision > 0; Min > Max yields values outside the range.
// Samplers and composite generators use it for ranges known to be valid.
func Draw(e *mersenne.Engine, init NumberInit) float64 {
	max := init.Max
	if max > 0 {
		max += init.Precision
	}

	r := e.Random(max/init.Precision, init.Min/init.Precision)
	if init.Precision == 1 {
		return r
	}

	return r / (1 / init.Precision)
}

func validateNumber(method string, init NumberInit) error {
	if !(init.Precision > 0) {
		return fmt.Errorf("%s: precision=%v: %w", method, init.Precision, ErrInvalidPrecision)
	}
	if init.Min > init.Max {
		return fmt.Errorf("%s: min=%v max=%v: %w", method, init.Min, init.Max, ErrInvalidRange)
	}
	if !onGrid(init.Min, init.Precision) || !onGrid(init.Max, init.Precision) {
		return fmt.Errorf("%s: min=%v max=%v off the %v grid: %w", method, init.Min, init.Max, init.Precision, ErrInvalidPrecision)
	}

	return nil
}

// onGrid reports whether v is a whole multiple of precision.
func onGrid(v, precision float64) bool {
	scaled := v / precision
	if math.IsInf(scaled, 0) || math.IsNaN(scaled) {
		return false
	}

	return math.Abs(scaled-math.Round(scaled)) <= gridTolerance*math.Max(1, math.Abs(scaled))
}

// drawInRange draws a validated init and pins the result into [Min, Max].
func drawInRange(e *mersenne.Engine, init NumberInit) float64 {
	v := Draw(e, init)
	if v < init.Min {
		return init.Min
	}
	if init.Max > 0 && v > init.Max {
		return init.Max
	}

	return v
}

// Number draws a number on init's precision grid within [Min, Max] (Max is
// exclusive when it is not positive). Bounds off the grid fail with
// ErrInvalidPrecision.
func (t *Types) Number(init NumberInit) (float64, error) {
	if err := validateNumber(methodNumber, init); err != nil {
		return 0, err
	}

	return drawInRange(t.engine(), init), nil
}

// NumberUpTo draws an integer in [0, max] (defaults otherwise). A negative
// max is passed through unvalidated and yields values in [max, 0].
func (t *Types) NumberUpTo(max float64) float64 {
	init := DefaultNumberInit()
	init.Max = max

	return Draw(t.engine(), init)
}

// Int draws an integer in [min, max] for max > 0, or [min, max) otherwise.
func (t *Types) Int(min, max int) int {
	return int(Draw(t.engine(), NumberInit{Min: float64(min), Max: float64(max), Precision: 1}))
}

// Float draws a number with init's precision; use DefaultFloatInit as a base.
func (t *Types) Float(init NumberInit) (float64, error) {
	if err := validateNumber(methodFloat, init); err != nil {
		return 0, err
	}

	return drawInRange(t.engine(), init), nil
}

// FloatPrecision draws a float in the default range with the given precision.
// The default max (99999) must be a multiple of precision.
func (t *Types) FloatPrecision(precision float64) (float64, error) {
	init := DefaultFloatInit()
	init.Precision = precision

	return t.Float(init)
}
