// SPDX-License-Identifier: MIT
// Package: seedmock/headers
//
// collect.go — bounded-retry header collection and set assembly.
//
// Contract:
//   • Candidates are the schema entries for the direction, narrowed by group
//     and pool. Each attempt draws one candidate uniformly.
//   • A draw is rejected when NoMulti is set and the name is present, or when
//     the name is singular and present.
//   • After size*10 attempts the call fails with ErrUnsatisfiable. Either the
//     full size is returned or nothing.

package headers

import (
	"fmt"

	"github.com/katalvlaran/seedmock/random"
	"github.com/sirupsen/logrus"
)

const (
	methodCollect = "Collect"
	methodBuild   = "Build"
	methodHeaders = "Headers"

	// attemptFactor bounds the collector loop at size*attemptFactor draws.
	attemptFactor = 10

	defaultMaxHeaders = 10
)

// CollectInit narrows the candidates of Collect.
type CollectInit struct {
	// Group keeps only rules tagged with it; empty means any group.
	Group string
	// Pool keeps only the listed names; empty means the whole schema.
	Pool []string
	// NoMulti forbids repeating any name.
	NoMulti bool
}

// HeadersInit configures Headers.
type HeadersInit struct {
	Group string
	// Length fixes the number of collected names; 0 draws it from Min..Max.
	Length int
	Min    int
	// Max defaults to 10 when not positive.
	Max int
	// Mime replaces any collected content-type and is appended last.
	Mime    string
	Pool    []string
	NoMulti bool
}

// candidates returns the names matching dir and init, in schema order.
func candidates(dir Direction, init CollectInit) []string {
	var pool map[string]struct{}
	if len(init.Pool) > 0 {
		pool = make(map[string]struct{}, len(init.Pool))
		for _, n := range init.Pool {
			pool[n] = struct{}{}
		}
	}

	names := make([]string, 0, len(schema))
	for _, r := range schema {
		if !r.Applies(dir) {
			continue
		}
		if init.Group != "" && !r.InGroup(init.Group) {
			continue
		}
		if pool != nil {
			if _, ok := pool[r.Name]; !ok {
				continue
			}
		}
		names = append(names, r.Name)
	}

	return names
}

// Collect draws size header names for dir. Names may repeat unless they are
// singular or init.NoMulti is set.
func (g *Generator) Collect(dir Direction, size int, init CollectInit) ([]string, error) {
	if size < 0 {
		return nil, fmt.Errorf("%s: size=%d: %w", methodCollect, size, ErrInvalidSize)
	}
	if size == 0 {
		return []string{}, nil
	}

	keys := candidates(dir, init)
	if len(keys) == 0 {
		return nil, fmt.Errorf("%s: %s group=%q pool=%v: %w", methodCollect, dir, init.Group, init.Pool, ErrNoCandidates)
	}

	maxAttempts := size * attemptFactor
	result := make([]string, 0, size)
	present := make(map[string]struct{}, size)
	attempts, rejected := 0, 0
	for len(result) < size {
		attempts++
		if attempts > maxAttempts {
			g.logger.WithFields(logrus.Fields{
				"direction":  dir.String(),
				"size":       size,
				"candidates": len(keys),
				"collected":  len(result),
			}).Warn("headers: unsatisfiable configuration")
			return nil, fmt.Errorf("%s: %s size=%d after %d attempts: %w", methodCollect, dir, size, maxAttempts, ErrUnsatisfiable)
		}

		name, _ := random.PickOne(g.ctx.Random, keys)
		_, seen := present[name]
		if seen && (init.NoMulti || isSingular(name)) {
			rejected++
			continue
		}
		result = append(result, name)
		present[name] = struct{}{}
	}

	if rejected > 0 {
		g.logger.WithFields(logrus.Fields{
			"direction": dir.String(),
			"size":      size,
			"attempts":  attempts,
			"rejected":  rejected,
		}).Debug("headers: draws rejected")
	}

	return result, nil
}

func isSingular(name string) bool {
	r, ok := Lookup(name)
	return ok && r.Singular
}

// Build generates a value for every name. The set keeps first-seen order;
// repeated names are joined with "; " for cookie and ", " otherwise.
func (g *Generator) Build(names []string) (Set, error) {
	set := make(Set, 0, len(names))
	index := make(map[string]int, len(names))
	for _, name := range names {
		r, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%s: %q: %w", methodBuild, name, ErrUnknownHeader)
		}
		value := r.Generate(g.ctx)
		if i, dup := index[name]; dup {
			set[i].Value += joiner(name) + value
			continue
		}
		index[name] = len(set)
		set = append(set, Header{Name: name, Value: value})
	}

	return set, nil
}

func joiner(name string) string {
	if name == "cookie" {
		return "; "
	}
	return ", "
}

// Headers collects and builds a header set for dir.
func (g *Generator) Headers(dir Direction, init HeadersInit) (Set, error) {
	if init.Length < 0 {
		return nil, fmt.Errorf("%s: length=%d: %w", methodHeaders, init.Length, ErrInvalidSize)
	}

	size := init.Length
	if size == 0 {
		hi := init.Max
		if hi <= 0 {
			hi = defaultMaxHeaders
		}
		if init.Min < 0 || init.Min > hi {
			return nil, fmt.Errorf("%s: min=%d max=%d: %w", methodHeaders, init.Min, hi, ErrInvalidSize)
		}
		size = g.ctx.Types.Int(init.Min, hi)
	}

	names, err := g.Collect(dir, size, CollectInit{Group: init.Group, Pool: init.Pool, NoMulti: init.NoMulti})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodHeaders, err)
	}

	if init.Mime != "" {
		for i, n := range names {
			if n == "content-type" {
				names = append(names[:i], names[i+1:]...)
				break
			}
		}
	}

	set, err := g.Build(names)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodHeaders, err)
	}
	if init.Mime != "" {
		set = append(set, Header{Name: "content-type", Value: init.Mime})
	}

	return set, nil
}
