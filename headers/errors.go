// SPDX-License-Identifier: MIT
// Package: seedmock/headers
//
// errors.go — sentinel errors for the header collector.
//
// ErrInvalidSize and ErrUnknownHeader are input-validation errors.
// ErrNoCandidates and ErrUnsatisfiable report configurations that can never
// produce the requested set. None of them is retried.

package headers

import "errors"

var (
	// ErrNoCandidates indicates that no schema entry matches the direction,
	// group and pool filters while a non-empty set was requested.
	ErrNoCandidates = errors.New("headers: invalid configuration, unable to produce headers candidates")

	// ErrUnsatisfiable indicates the attempt cap was exceeded before the
	// requested number of headers was collected.
	ErrUnsatisfiable = errors.New("headers: invalid configuration, unable to produce a list of headers")

	// ErrInvalidSize indicates a negative length or min greater than max.
	ErrInvalidSize = errors.New("headers: invalid size")

	// ErrUnknownHeader indicates a name that is not in the schema.
	ErrUnknownHeader = errors.New("headers: unknown header")
)
