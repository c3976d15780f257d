// Package lorem generates pronounceable pseudo-words from a locale's syntax
// tables. Header value generators use it for cookie names and status texts.
package lorem

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/seedmock/locale"
	"github.com/katalvlaran/seedmock/mersenne"
	"github.com/katalvlaran/seedmock/types"
)

// ErrMutuallyExclusive indicates WordInit set both Syllables and Length.
var ErrMutuallyExclusive = errors.New(`lorem: cannot specify both "syllables" and "length"`)

const methodWord = "Word"

// SyllableInit configures Syllable.
type SyllableInit struct {
	// Length is the number of characters; 0 draws 2 or 3.
	Length     int
	Capitalize bool
}

// WordInit configures Word. Syllables and Length are mutually exclusive.
type WordInit struct {
	// Syllables is the number of syllables; 0 draws 1 to 3.
	Syllables int
	// Length cuts the word to an exact number of characters.
	Length     int
	Capitalize bool
}

// Lorem generates words.
type Lorem struct {
	types  *types.Types
	locale locale.Locale
}

// New returns a Lorem drawing from src with the given resolved locale.
func New(src *mersenne.Source, l locale.Locale) *Lorem {
	return &Lorem{
		types:  types.New(src),
		locale: locale.Resolve(l, locale.En()),
	}
}

// SetLocale replaces the locale; the value is resolved against En once here.
func (l *Lorem) SetLocale(loc locale.Locale) {
	l.locale = locale.Resolve(loc, locale.En())
}

// Syllable returns a run of alternating consonants and vowels. The first
// character may be either.
func (l *Lorem) Syllable(init SyllableInit) string {
	length := init.Length
	if length <= 0 {
		length = l.types.Int(2, 3)
	}

	consonants := l.locale.Syntax.Consonants
	vowels := l.locale.Syntax.Vowels

	var b strings.Builder
	var chr string
	for i := 0; i < length; i++ {
		switch {
		case i == 0:
			chr = l.types.Character(types.CharacterInit{Pool: consonants + vowels})
		case strings.Contains(vowels, chr):
			chr = l.types.Character(types.CharacterInit{Pool: consonants})
		default:
			chr = l.types.Character(types.CharacterInit{Pool: vowels})
		}
		b.WriteString(chr)
	}

	if init.Capitalize {
		return Capitalize(b.String())
	}

	return b.String()
}

// Word returns a word made of syllables, or of exactly Length characters.
func (l *Lorem) Word(init WordInit) (string, error) {
	if init.Syllables > 0 && init.Length > 0 {
		return "", fmt.Errorf("%s: syllables=%d length=%d: %w", methodWord, init.Syllables, init.Length, ErrMutuallyExclusive)
	}

	var b strings.Builder
	if init.Length > 0 {
		for utf8.RuneCountInString(b.String()) < init.Length {
			b.WriteString(l.Syllable(SyllableInit{}))
		}
	} else {
		syllables := init.Syllables
		if syllables <= 0 {
			syllables = l.types.Int(1, 3)
		}
		for i := 0; i < syllables; i++ {
			b.WriteString(l.Syllable(SyllableInit{}))
		}
	}

	word := b.String()
	if init.Length > 0 {
		word = string([]rune(word)[:init.Length])
	}
	if init.Capitalize {
		word = Capitalize(word)
	}

	return word, nil
}

// RandomWord returns a word with default options. It cannot fail.
func (l *Lorem) RandomWord() string {
	w, _ := l.Word(WordInit{})

	return w
}

// Words returns n default words separated by a space.
func (l *Lorem) Words(n int) string {
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, l.RandomWord())
	}

	return strings.Join(words, " ")
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
