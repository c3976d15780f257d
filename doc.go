// Package seedmock generates reproducible synthetic data for tests and demos:
// numbers, strings, dates, identifiers, words, domains and whole HTTP header
// sets, all driven by one seeded MT19937 generator.
//
// What is inside?
//
//	mersenne/ — MT19937 engine, the bounded seed → engine registry, Source
//	types/    — distributions: Number, Float, String, Character, Date, Boolean, UUID, Hash
//	random/   — sampler: PickOne, Pick (partial Fisher–Yates), PickAny
//	lorem/    — syllables and words from locale syntax tables
//	internet/ — protocols, domain names, URIs
//	headers/  — header schema and the constrained collector
//	request/  — request methods, payload decision, URL and request headers
//	response/ — redirect status picker, response status line and headers
//	locale/   — locale tables, resolved once against the English fallback
//	config/   — file and SEEDMOCK_* environment configuration
//
// Reproducibility
//
// For a fixed seed and the same ordered sequence of calls the output is
// identical across runs and platforms. Every facade in a DataMock draws from
// one shared Source, so DataMock.Seed re-seeds all of them at once.
//
//	m := seedmock.New(seedmock.WithSeed(100))
//	s := m.Types.String(10) // "ciOVWbrHAI"
//
// Concurrency
//
// An Engine serializes its own draws, so concurrent use never corrupts state.
// Interleaving goroutines on one seed still makes the order of draws, and
// therefore the output, nondeterministic; give each goroutine its own seed
// when the values must be reproducible.
//
// Errors
//
// Invalid configuration returns wrapped sentinel errors (check them with
// errors.Is). The header collector fails with headers.ErrUnsatisfiable when
// its constraints cannot be met within size*10 draws.
package seedmock
