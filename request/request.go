// Package request generates HTTP requests: a method, a URL and request
// headers with the content type pinned when the request carries a payload.
package request

import (
	"fmt"
	"net/http"

	"github.com/katalvlaran/seedmock/headers"
	"github.com/katalvlaran/seedmock/internet"
	"github.com/katalvlaran/seedmock/locale"
	"github.com/katalvlaran/seedmock/mersenne"
	"github.com/katalvlaran/seedmock/random"
	"github.com/katalvlaran/seedmock/types"
)

const methodRequest = "Request"

var (
	payloadOperations    = []string{http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	nonPayloadOperations = []string{http.MethodGet, http.MethodHead}
	allOperations        = append(append([]string{}, payloadOperations...), nonPayloadOperations...)
)

// PayloadOperations returns the methods drawn for requests with a payload.
func PayloadOperations() []string {
	return append([]string(nil), payloadOperations...)
}

// NonPayloadOperations returns the methods drawn for requests without one.
func NonPayloadOperations() []string {
	return append([]string(nil), nonPayloadOperations...)
}

// PayloadMode narrows the method pool of Method.
type PayloadMode int

const (
	// PayloadAny draws from every operation.
	PayloadAny PayloadMode = iota
	// PayloadWith draws from PayloadOperations.
	PayloadWith
	// PayloadWithout draws from NonPayloadOperations.
	PayloadWithout
)

// MethodInit configures Method. Operation wins over Pool, Pool over Payload.
type MethodInit struct {
	Operation string
	Pool      []string
	Payload   PayloadMode
}

// PayloadInit decides whether a request carries a payload.
type PayloadInit struct {
	// NoPayload forbids a payload.
	NoPayload bool
	// Force requires a payload unless NoPayload is set.
	Force bool
	// ContentType fixes the content type of the payload.
	ContentType string
}

// RequestInit configures Request.
type RequestInit struct {
	Method  MethodInit
	Payload PayloadInit
	// Headers is passed to the header generator; its Mime is overridden.
	Headers headers.HeadersInit
}

// Result is a generated request. Payload bodies are not generated; HasPayload
// and ContentType describe the one the request would carry.
type Result struct {
	URL         string
	Method      string
	HasPayload  bool
	ContentType string
	Headers     headers.Set
}

// Generator produces requests.
type Generator struct {
	src      *mersenne.Source
	types    *types.Types
	random   *random.Random
	internet *internet.Internet
	headers  *headers.Generator
}

// New returns a Generator drawing from src. opts are applied to the header
// generator.
func New(src *mersenne.Source, l locale.Locale, opts ...headers.Option) *Generator {
	if src == nil {
		src = mersenne.NewSource()
	}
	return &Generator{
		src:      src,
		types:    types.New(src),
		random:   random.New(src),
		internet: internet.New(src, l),
		headers:  headers.New(src, l, opts...),
	}
}

// Seed re-seeds the shared Source.
func (g *Generator) Seed(value uint32) {
	g.src.Seed(value)
}

// SetLocale replaces the locale for URLs and header values.
func (g *Generator) SetLocale(l locale.Locale) {
	g.internet.SetLocale(l)
	g.headers.SetLocale(l)
}

// Method returns an HTTP method.
func (g *Generator) Method(init MethodInit) string {
	if init.Operation != "" {
		return init.Operation
	}

	pool := init.Pool
	if len(pool) == 0 {
		switch init.Payload {
		case PayloadWith:
			pool = payloadOperations
		case PayloadWithout:
			pool = nonPayloadOperations
		default:
			pool = allOperations
		}
	}
	m, _ := random.PickOne(g.random, pool)

	return m
}

// hasPayload draws a payload decision unless init settles it.
func (g *Generator) hasPayload(init PayloadInit) bool {
	if init.NoPayload {
		return false
	}
	return init.Force || g.types.Boolean()
}

// Request generates a request. The draw order is payload decision, method,
// content type, headers, URL. Requests without a payload carry no
// content-type header.
func (g *Generator) Request(init RequestInit) (Result, error) {
	withPayload := g.hasPayload(init.Payload)

	mi := init.Method
	mi.Payload = PayloadWithout
	if withPayload {
		mi.Payload = PayloadWith
	}
	method := g.Method(mi)

	var ct string
	if withPayload {
		ct = init.Payload.ContentType
		if ct == "" {
			ct = g.headers.ContentType()
		}
	}

	hi := init.Headers
	hi.Mime = ct
	set, err := g.headers.Headers(headers.Request, hi)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", methodRequest, err)
	}
	if !withPayload {
		set = dropHeader(set, "content-type")
	}

	return Result{
		URL:         g.internet.URI(),
		Method:      method,
		HasPayload:  withPayload,
		ContentType: ct,
		Headers:     set,
	}, nil
}

func dropHeader(set headers.Set, name string) headers.Set {
	out := set[:0]
	for _, h := range set {
		if h.Name != name {
			out = append(out, h)
		}
	}
	return out
}

// Get generates a GET request without a payload.
func (g *Generator) Get(init RequestInit) (Result, error) {
	init.Method.Operation = http.MethodGet
	init.Payload.NoPayload = true

	return g.Request(init)
}

// Post generates a POST request with a payload.
func (g *Generator) Post(init RequestInit) (Result, error) {
	init.Method.Operation = http.MethodPost
	init.Payload.Force = true

	return g.Request(init)
}

// Put generates a PUT request with a payload.
func (g *Generator) Put(init RequestInit) (Result, error) {
	init.Method.Operation = http.MethodPut
	init.Payload.Force = true

	return g.Request(init)
}

// Delete generates a DELETE request; the payload is drawn as usual.
func (g *Generator) Delete(init RequestInit) (Result, error) {
	init.Method.Operation = http.MethodDelete

	return g.Request(init)
}
