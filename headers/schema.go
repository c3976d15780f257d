// SPDX-License-Identifier: MIT
// Package: seedmock/headers
//
// schema.go — the read-only header table consulted by the collector.
//
// Order matters: candidates are filtered from this slice in order and drawn
// by index, so reordering entries changes every seeded output.

package headers

import (
	"net/http"
	"strings"

	"github.com/katalvlaran/seedmock/random"
	"github.com/katalvlaran/seedmock/types"
	"github.com/spf13/cast"
)

// Direction selects request or response headers.
type Direction int

const (
	Request Direction = iota
	Response
)

func (d Direction) String() string {
	if d == Response {
		return "response"
	}
	return "request"
}

// Header groups.
const (
	GroupGeneral     = "general"
	GroupCaching     = "caching"
	GroupConditional = "conditional"
	GroupContent     = "content"
	GroupCookies     = "cookies"
	GroupCORS        = "cors"
)

// Rule describes one header.
type Rule struct {
	Name     string
	Groups   []string
	Request  bool
	Response bool
	// Singular headers appear at most once in a set.
	Singular bool
	// Enum lists the fixed values, when the header has any.
	Enum     []string
	Generate func(*Context) string
}

// Applies reports whether the rule is valid for dir.
func (r Rule) Applies(dir Direction) bool {
	if dir == Response {
		return r.Response
	}
	return r.Request
}

// InGroup reports whether group is one of the rule's groups.
func (r Rule) InGroup(group string) bool {
	for _, g := range r.Groups {
		if g == group {
			return true
		}
	}
	return false
}

const (
	numberPlaceholder = "{{number}}"
	maxAgeValue       = 500000
	maxContentLength  = 1000000
	maxRepeat         = 4
)

var (
	cacheControlRequest = []string{
		"max-age={{number}}", "max-stale", "min-fresh={{number}}", "no-cache",
		"no-store", "no-transform", "only-if-cached",
	}
	cacheControlResponse = []string{
		"must-revalidate", "no-cache", "no-store", "no-transform", "public",
		"private", "proxy-revalidate", "max-age={{number}}", "s-maxage={{number}}",
	}
	cacheControlSides = [][]string{cacheControlRequest, cacheControlResponse}

	connectionValues = []string{"keep-alive", "close"}
	acceptValues     = []string{
		"*/*", "text/html", "image/*", "application/xhtml+xml",
		"application/xml;q=0.9", "application/json",
	}
	acceptCharsetValues = []string{"utf-8", "iso-8859-1;q=0.5"}
	encodingValues      = []string{
		"gzip", "compress", "deflate", "br", "identity", "*", "gzip;q=1.0", "*;q=0.5",
	}
	contentTypeValues = []string{
		"text/html", "image/png", "application/xml", "application/json",
		"text-plain", "application/x-www-form-urlencoded",
	}
	transferEncodingValues = []string{"chunked", "compress", "deflate", "gzip", "identity"}
)

var schema = []Rule{
	{Name: "date", Groups: []string{GroupGeneral}, Request: true, Response: true, Singular: true, Generate: httpDate},
	{Name: "cache-control", Groups: []string{GroupGeneral, GroupCaching}, Request: true, Response: true, Generate: cacheControl},
	{Name: "connection", Groups: []string{GroupGeneral}, Request: true, Response: true, Singular: true, Enum: connectionValues, Generate: enum(connectionValues)},
	{Name: "age", Groups: []string{GroupCaching}, Response: true, Singular: true, Generate: intValue(1, maxAgeValue)},
	{Name: "expires", Groups: []string{GroupCaching}, Response: true, Singular: true, Generate: httpDate},
	{Name: "pragma", Groups: []string{GroupCaching}, Response: true, Generate: func(*Context) string { return "no-cache" }},
	{Name: "last-modified", Groups: []string{GroupConditional}, Response: true, Singular: true, Generate: httpDate},
	{Name: "etag", Groups: []string{GroupConditional}, Response: true, Singular: true, Generate: weakETag},
	{Name: "if-match", Groups: []string{GroupConditional}, Request: true, Generate: weakETag},
	{Name: "if-none-match", Groups: []string{GroupConditional}, Request: true, Generate: weakETag},
	{Name: "if-modified-since", Groups: []string{GroupConditional}, Request: true, Generate: httpDate},
	{Name: "accept", Groups: []string{GroupContent}, Request: true, Enum: acceptValues, Generate: enum(acceptValues)},
	{Name: "accept-charset", Groups: []string{GroupContent}, Request: true, Enum: acceptCharsetValues, Generate: enum(acceptCharsetValues)},
	{Name: "accept-encoding", Groups: []string{GroupContent}, Request: true, Enum: encodingValues, Generate: enum(encodingValues)},
	{Name: "cookie", Groups: []string{GroupCookies}, Request: true, Generate: cookiePairs},
	{Name: "set-cookie", Groups: []string{GroupCookies}, Response: true, Generate: cookiePairs},
	{Name: "access-control-allow-origin", Groups: []string{GroupCORS}, Response: true, Generate: corsOrigin},
	{Name: "origin", Groups: []string{GroupCORS}, Request: true, Singular: true, Generate: corsOrigin},
	{Name: "content-length", Groups: []string{GroupContent}, Request: true, Response: true, Singular: true, Generate: intValue(0, maxContentLength)},
	{Name: "content-type", Groups: []string{GroupContent}, Request: true, Response: true, Singular: true, Enum: contentTypeValues, Generate: enum(contentTypeValues)},
	{Name: "content-encoding", Groups: []string{GroupContent}, Request: true, Response: true, Singular: true, Enum: encodingValues, Generate: enum(encodingValues)},
	{Name: "transfer-encoding", Groups: []string{GroupContent}, Response: true, Singular: true, Enum: transferEncodingValues, Generate: enum(transferEncodingValues)},
	{Name: "link", Groups: []string{GroupGeneral}, Response: true, Generate: links},
}

var schemaIndex = func() map[string]int {
	idx := make(map[string]int, len(schema))
	for i, r := range schema {
		idx[r.Name] = i
	}
	return idx
}()

// Rules returns a copy of the schema in table order.
func Rules() []Rule {
	out := make([]Rule, len(schema))
	copy(out, schema)

	return out
}

// Lookup returns the rule for name.
func Lookup(name string) (Rule, bool) {
	i, ok := schemaIndex[name]
	if !ok {
		return Rule{}, false
	}
	return schema[i], true
}

func enum(values []string) func(*Context) string {
	return func(c *Context) string {
		v, _ := random.PickOne(c.Random, values)
		return v
	}
}

func intValue(lo, hi int) func(*Context) string {
	return func(c *Context) string {
		return cast.ToString(c.Types.Int(lo, hi))
	}
}

func httpDate(c *Context) string {
	return c.Types.Datetime().UTC().Format(http.TimeFormat)
}

func weakETag(c *Context) string {
	return "W/" + c.Types.Hash(types.DefaultHashInit())
}

func cacheControl(c *Context) string {
	side, _ := random.PickOne(c.Random, cacheControlSides)
	value, _ := random.PickOne(c.Random, side)
	n := c.Types.Int(1, maxAgeValue)

	return strings.Replace(value, numberPlaceholder, cast.ToString(n), 1)
}

func cookiePairs(c *Context) string {
	size := c.Types.Int(1, maxRepeat)
	pairs := make([]string, size)
	for i := range pairs {
		name := c.Lorem.RandomWord()
		pairs[i] = name + "=" + c.Lorem.RandomWord()
	}

	return strings.Join(pairs, "; ")
}

func corsOrigin(c *Context) string {
	if c.Types.Boolean() {
		return c.Internet.Domain()
	}
	return "*"
}

func links(c *Context) string {
	size := c.Types.Int(1, maxRepeat)
	parts := make([]string, size)
	for i := range parts {
		uri := c.Internet.URI()
		parts[i] = "<" + uri + `>; rel="` + c.Types.DefaultString() + `"`
	}

	return strings.Join(parts, ", ")
}
