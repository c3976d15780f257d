// SPDX-License-Identifier: MIT
// Package: seedmock/headers
//
// generator.go — Generator, its options and the value context.

package headers

import (
	"github.com/katalvlaran/seedmock/internet"
	"github.com/katalvlaran/seedmock/locale"
	"github.com/katalvlaran/seedmock/lorem"
	"github.com/katalvlaran/seedmock/mersenne"
	"github.com/katalvlaran/seedmock/random"
	"github.com/katalvlaran/seedmock/types"
	"github.com/sirupsen/logrus"
)

// Context bundles the pickers a Rule.Generate may draw from. All of them
// share one Source.
type Context struct {
	Types    *types.Types
	Random   *random.Random
	Lorem    *lorem.Lorem
	Internet *internet.Internet
}

// Generator produces header names and header sets.
type Generator struct {
	src    *mersenne.Source
	ctx    *Context
	logger logrus.FieldLogger
}

// Option customizes a Generator.
type Option func(*Generator)

// WithLogger routes collector logs to logger. Panics on nil.
func WithLogger(logger logrus.FieldLogger) Option {
	if logger == nil {
		panic("headers: WithLogger(nil)")
	}
	return func(g *Generator) {
		g.logger = logger
	}
}

// New returns a Generator drawing from src. A nil src binds a fresh
// entropy-seeded Source.
func New(src *mersenne.Source, l locale.Locale, opts ...Option) *Generator {
	if src == nil {
		src = mersenne.NewSource()
	}
	g := &Generator{
		src: src,
		ctx: &Context{
			Types:    types.New(src),
			Random:   random.New(src),
			Lorem:    lorem.New(src, l),
			Internet: internet.New(src, l),
		},
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Seed re-seeds the shared Source.
func (g *Generator) Seed(value uint32) {
	g.src.Seed(value)
}

// SetLocale replaces the locale used for words and domains.
func (g *Generator) SetLocale(l locale.Locale) {
	g.ctx.Lorem.SetLocale(l)
	g.ctx.Internet.SetLocale(l)
}

// Context exposes the value context, mainly for custom rules.
func (g *Generator) Context() *Context {
	return g.ctx
}

// ContentType returns a value for the content-type header.
func (g *Generator) ContentType() string {
	r, _ := Lookup("content-type")

	return r.Generate(g.ctx)
}

// Link returns a value for the link header.
func (g *Generator) Link() string {
	r, _ := Lookup("link")

	return r.Generate(g.ctx)
}
