// SPDX-License-Identifier: MIT
// Package: seedmock/mersenne
//
// errors.go — sentinel errors for the mersenne package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Call sites attach context with %w, never by re-defining messages.
//   • Engine draws never fail; only registry construction validates input.

package mersenne

import "errors"

// ErrInvalidCapacity indicates a Registry was requested with a capacity that
// cannot hold a single engine (capacity ≤ 0).
var ErrInvalidCapacity = errors.New("mersenne: registry capacity must be positive")
