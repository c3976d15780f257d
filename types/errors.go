// SPDX-License-Identifier: MIT
// Package: seedmock/types
//
// errors.go — sentinel errors for the distributions.
//
// All of them are input-validation errors: they fail immediately and are
// never retried. Call sites wrap them with the method name via %w.

package types

import "errors"

var (
	// ErrInvalidRange indicates min is greater than max.
	ErrInvalidRange = errors.New("types: min is greater than max")

	// ErrInvalidPrecision indicates a precision that is not strictly positive.
	ErrInvalidPrecision = errors.New("types: precision must be positive")

	// ErrInvalidLikelihood indicates a boolean likelihood outside [0, 100].
	ErrInvalidLikelihood = errors.New("types: invalid likelihood range, accepted range is [0, 100]")

	// ErrEmptyPool indicates an explicit character pool with no characters.
	ErrEmptyPool = errors.New("types: character pool is empty")
)
