// Package internet generates protocols, domains and URIs for header values.
package internet

import (
	"strings"

	"github.com/katalvlaran/seedmock/locale"
	"github.com/katalvlaran/seedmock/lorem"
	"github.com/katalvlaran/seedmock/mersenne"
	"github.com/katalvlaran/seedmock/random"
)

var protocols = []string{"http", "https"}

// unsafeDomainChars are removed from generated domain names.
const unsafeDomainChars = `\~#&*{}/:<>?|"'`

// Internet generates internet identifiers.
type Internet struct {
	random *random.Random
	lorem  *lorem.Lorem
	locale locale.Locale
}

// New returns an Internet drawing from src with the given locale.
func New(src *mersenne.Source, l locale.Locale) *Internet {
	resolved := locale.Resolve(l, locale.En())

	return &Internet{
		random: random.New(src),
		lorem:  lorem.New(src, resolved),
		locale: resolved,
	}
}

// SetLocale replaces the locale.
func (in *Internet) SetLocale(l locale.Locale) {
	in.locale = locale.Resolve(l, locale.En())
	in.lorem.SetLocale(in.locale)
}

// Protocol returns http or https.
func (in *Internet) Protocol() string {
	p, _ := random.PickOne(in.random, protocols)

	return p
}

// DomainSuffix picks a top level domain from the locale.
func (in *Internet) DomainSuffix() string {
	s, _ := random.PickOne(in.random, in.locale.Internet.DomainSuffix)

	return s
}

// DomainName returns two words joined by a dash, lower cased.
func (in *Internet) DomainName() string {
	name := in.lorem.RandomWord() + "-" + in.lorem.RandomWord()
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(unsafeDomainChars, r) {
			return -1
		}
		return r
	}, name)

	return strings.ToLower(name)
}

// Domain returns a name and a suffix, e.g. "fabo-lite.org".
func (in *Internet) Domain() string {
	name := in.DomainName()

	return name + "." + in.DomainSuffix()
}

// URI returns protocol://domain.
func (in *Internet) URI() string {
	protocol := in.Protocol()

	return protocol + "://" + in.Domain()
}
