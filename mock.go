package seedmock

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seedmock/config"
	"github.com/katalvlaran/seedmock/headers"
	"github.com/katalvlaran/seedmock/internet"
	"github.com/katalvlaran/seedmock/locale"
	"github.com/katalvlaran/seedmock/lorem"
	"github.com/katalvlaran/seedmock/mersenne"
	"github.com/katalvlaran/seedmock/random"
	"github.com/katalvlaran/seedmock/request"
	"github.com/katalvlaran/seedmock/response"
	"github.com/katalvlaran/seedmock/types"
	"github.com/sirupsen/logrus"
)

// DataMock bundles every generator over one Source.
type DataMock struct {
	src    *mersenne.Source
	logger logrus.FieldLogger

	Types    *types.Types
	Random   *random.Random
	Lorem    *lorem.Lorem
	Internet *internet.Internet
	Headers  *headers.Generator
	Request  *request.Generator
	Response *response.Generator
}

// Option customizes New.
type Option func(*options)

type options struct {
	seed     *uint32
	registry *mersenne.Registry
	locale   locale.Locale
	logger   logrus.FieldLogger
}

// WithSeed fixes the seed.
func WithSeed(seed uint32) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithRegistry binds engines from r instead of the process-wide registry.
// Panics on nil.
func WithRegistry(r *mersenne.Registry) Option {
	if r == nil {
		panic("seedmock: WithRegistry(nil)")
	}
	return func(o *options) {
		o.registry = r
	}
}

// WithLocale sets the locale; missing fields fall back to English.
func WithLocale(l locale.Locale) Option {
	return func(o *options) {
		o.locale = l
	}
}

// WithLogger sets the logger for every component. Panics on nil.
func WithLogger(logger logrus.FieldLogger) Option {
	if logger == nil {
		panic("seedmock: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = logger
	}
}

// New returns a DataMock. Without WithSeed the seed comes from entropy.
func New(opts ...Option) *DataMock {
	o := options{
		locale: locale.En(),
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	srcOpts := []mersenne.Option{mersenne.WithLogger(o.logger)}
	if o.seed != nil {
		srcOpts = append(srcOpts, mersenne.WithSeed(*o.seed))
	}
	if o.registry != nil {
		srcOpts = append(srcOpts, mersenne.WithRegistry(o.registry))
	}
	src := mersenne.NewSource(srcOpts...)
	l := locale.Resolve(o.locale, locale.En())

	return &DataMock{
		src:      src,
		logger:   o.logger,
		Types:    types.New(src),
		Random:   random.New(src),
		Lorem:    lorem.New(src, l),
		Internet: internet.New(src, l),
		Headers:  headers.New(src, l, headers.WithLogger(o.logger)),
		Request:  request.New(src, l, headers.WithLogger(o.logger)),
		Response: response.New(src, l, headers.WithLogger(o.logger)),
	}
}

// NewFromConfig builds a DataMock from cfg: its own registry and logger, the
// configured seed and the named or file based locale.
func NewFromConfig(cfg *config.Config) (*DataMock, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("NewFromConfig: %w", err)
	}

	lvl, _ := cfg.Level()
	logger := logrus.New()
	logger.SetLevel(lvl)

	reg, err := mersenne.NewRegistry(cfg.RegistryCapacity, mersenne.WithRegistryLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("NewFromConfig: %w", err)
	}

	l, err := resolveLocale(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("NewFromConfig: %w", err)
	}

	opts := []Option{WithRegistry(reg), WithLocale(l), WithLogger(logger)}
	if seed, ok, _ := cfg.SeedValue(); ok {
		opts = append(opts, WithSeed(seed))
	}
	m := New(opts...)
	logger.WithFields(logrus.Fields{
		"seed":     m.SeedValue(),
		"locale":   l.Title,
		"capacity": cfg.RegistryCapacity,
	}).Debug("seedmock: configured")

	return m, nil
}

// resolveLocale treats name as a built-in locale, else as a file path.
func resolveLocale(name string) (locale.Locale, error) {
	l, err := locale.Lookup(name)
	if err == nil {
		return l, nil
	}
	if !errors.Is(err, locale.ErrUnknown) {
		return locale.Locale{}, err
	}

	return locale.LoadFile(name)
}

// Seed re-seeds every generator.
func (m *DataMock) Seed(value uint32) {
	m.src.Seed(value)
}

// SeedValue returns the current seed.
func (m *DataMock) SeedValue() uint32 {
	return m.src.SeedValue()
}

// Source returns the shared Source.
func (m *DataMock) Source() *mersenne.Source {
	return m.src
}

// SetLocale replaces the locale of every word and domain generator.
func (m *DataMock) SetLocale(l locale.Locale) {
	m.Lorem.SetLocale(l)
	m.Internet.SetLocale(l)
	m.Headers.SetLocale(l)
	m.Request.SetLocale(l)
	m.Response.SetLocale(l)
}
