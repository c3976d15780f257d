// Package random implements uniform selection over slices: pick one element,
// or pick N elements without replacement.
//
// Pick is a partial Fisher–Yates shuffle run from the end of a copy of the
// source. Its swap index is drawn as a real-valued fraction,
//
//	index = floor((i+1) * float({min: 0, max: 0.99}))
//
// rather than as an integer draw. That consumes the engine exactly as the
// reproducibility contract expects; do not "simplify" it to an integer draw.
//
// Go methods cannot be generic, so the selection primitives are package
// functions taking the *Random they draw from.
package random
