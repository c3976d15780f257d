package headers

import (
	"net/http"
	"strings"
)

// Header is one name and its (possibly joined) value.
type Header struct {
	Name  string
	Value string
}

// Set is an ordered header list with unique names.
type Set []Header

// Get returns the value for name.
func (s Set) Get(name string) (string, bool) {
	for _, h := range s {
		if h.Name == name {
			return h.Value, true
		}
	}
	return "", false
}

// Names returns the header names in order.
func (s Set) Names() []string {
	out := make([]string, len(s))
	for i, h := range s {
		out[i] = h.Name
	}
	return out
}

// String renders "name: value" lines joined by "\n".
func (s Set) String() string {
	lines := make([]string, len(s))
	for i, h := range s {
		lines[i] = h.Name + ": " + h.Value
	}
	return strings.Join(lines, "\n")
}

// HTTP converts the set into an http.Header. Values are stored under the
// canonical key without splitting joined values.
func (s Set) HTTP() http.Header {
	out := make(http.Header, len(s))
	for _, h := range s {
		out.Add(h.Name, h.Value)
	}
	return out
}
