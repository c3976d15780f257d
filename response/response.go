// Package response generates HTTP response status lines and header sets.
package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/katalvlaran/seedmock/headers"
	"github.com/katalvlaran/seedmock/locale"
	"github.com/katalvlaran/seedmock/lorem"
	"github.com/katalvlaran/seedmock/mersenne"
	"github.com/katalvlaran/seedmock/random"
	"github.com/katalvlaran/seedmock/types"
)

// ErrInvalidStatusGroup indicates a status group outside 1..5.
var ErrInvalidStatusGroup = errors.New("response: status group must be in [1, 5]")

const methodResponse = "Response"

var redirectCodes = []int{
	http.StatusMovedPermanently,
	http.StatusFound,
	http.StatusSeeOther,
	http.StatusTemporaryRedirect,
	http.StatusPermanentRedirect,
}

var redirectMessages = map[int]string{
	http.StatusMovedPermanently:  "Moved Permanently",
	http.StatusFound:             "Found",
	http.StatusSeeOther:          "See Other",
	http.StatusTemporaryRedirect: "Temporary Redirect",
	http.StatusPermanentRedirect: "Permanent Redirect",
}

// RedirectCodes returns the redirect status codes: 301, 302, 303, 307, 308.
func RedirectCodes() []int {
	out := make([]int, len(redirectCodes))
	copy(out, redirectCodes)

	return out
}

// RedirectInit configures RedirectStatus. Zero values are drawn or derived.
type RedirectInit struct {
	Code   int
	Status string
}

// StatusResult is a status code with its reason phrase.
type StatusResult struct {
	Code   int
	Status string
}

// ResponseInit configures Response.
type ResponseInit struct {
	// StatusGroup is the leading digit of the code; 0 draws 2..5.
	StatusGroup int
	// NoBody skips the content type draw.
	NoBody bool
	// Mime fixes the content type instead of drawing one.
	Mime string
	// Headers is passed to the header generator; its Mime is overridden.
	Headers headers.HeadersInit
}

// Result is a generated response.
type Result struct {
	Code        int
	StatusText  string
	ContentType string
	Headers     headers.Set
}

// Generator produces responses.
type Generator struct {
	src     *mersenne.Source
	types   *types.Types
	random  *random.Random
	lorem   *lorem.Lorem
	headers *headers.Generator
}

// New returns a Generator drawing from src. opts are applied to the header
// generator.
func New(src *mersenne.Source, l locale.Locale, opts ...headers.Option) *Generator {
	if src == nil {
		src = mersenne.NewSource()
	}
	return &Generator{
		src:     src,
		types:   types.New(src),
		random:  random.New(src),
		lorem:   lorem.New(src, l),
		headers: headers.New(src, l, opts...),
	}
}

// Seed re-seeds the shared Source.
func (g *Generator) Seed(value uint32) {
	g.src.Seed(value)
}

// SetLocale replaces the locale for status texts and header values.
func (g *Generator) SetLocale(l locale.Locale) {
	g.lorem.SetLocale(l)
	g.headers.SetLocale(l)
}

// RedirectStatus returns a redirect code and its reason phrase.
func (g *Generator) RedirectStatus(init RedirectInit) StatusResult {
	code := init.Code
	if code == 0 {
		code, _ = random.PickOne(g.random, redirectCodes)
	}
	status := init.Status
	if status == "" {
		status = redirectMessages[code]
	}
	if status == "" {
		status = http.StatusText(code)
	}

	return StatusResult{Code: code, Status: status}
}

// Response generates a status code, a one word status text and response
// headers. Unless NoBody is set the content type is drawn first and pinned in
// the header set.
func (g *Generator) Response(init ResponseInit) (Result, error) {
	if init.StatusGroup < 0 || init.StatusGroup > 5 {
		return Result{}, fmt.Errorf("%s: group=%d: %w", methodResponse, init.StatusGroup, ErrInvalidStatusGroup)
	}

	var ct string
	if !init.NoBody {
		ct = init.Mime
		if ct == "" {
			ct = g.headers.ContentType()
		}
	}

	hi := init.Headers
	hi.Mime = ct
	set, err := g.headers.Headers(headers.Response, hi)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", methodResponse, err)
	}

	group := init.StatusGroup
	if group == 0 {
		group = g.types.Int(2, 5)
	}
	code := group*100 + g.types.Int(0, 99)

	return Result{
		Code:        code,
		StatusText:  g.lorem.RandomWord(),
		ContentType: ct,
		Headers:     set,
	}, nil
}
