// Package types derives shaped values from the seeded engine: numbers on a
// precision grid, strings, characters, dates, biased booleans, UUIDs and
// hashes.
//
// Every operation is expressed through mersenne.Engine's Real2/Random, so for
// a fixed seed the whole output sequence is reproducible. A Types value holds a
// *mersenne.Source; seeding the source re-binds every facade sharing it.
//
// Numbers:
//
//	The requested range is honored in the pre-scaled integer domain:
//
//	  if max > 0 { max += precision }
//	  r := floor(Real2()*(max/precision - min/precision) + min/precision)
//	  if precision != 1 { r /= 1/precision }
//
//	so {min: 0, max: 1.5, precision: 0.5} yields exactly {0, 0.5, 1, 1.5},
//	while a non-positive max stays exclusive.
//
// Call shapes:
//
//	Options structs start from DefaultNumberInit / DefaultFloatInit /
//	DefaultHashInit; the single-number shortcuts have their own entry points
//	(NumberUpTo, FloatPrecision, DateUpTo, BooleanLikelihood).
//
// Errors are package sentinels (ErrInvalidRange, ErrInvalidPrecision,
// ErrInvalidLikelihood, ErrEmptyPool); match them with errors.Is.
package types
