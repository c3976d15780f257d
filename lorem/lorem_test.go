package lorem_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/katalvlaran/seedmock/locale"
	"github.com/katalvlaran/seedmock/lorem"
	"github.com/katalvlaran/seedmock/mersenne"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLorem(t testing.TB, seed uint32) *lorem.Lorem {
	t.Helper()
	reg, err := mersenne.NewRegistry(4)
	require.NoError(t, err)

	return lorem.New(mersenne.NewSource(mersenne.WithSeed(seed), mersenne.WithRegistry(reg)), locale.En())
}

func TestWord_MutuallyExclusive(t *testing.T) {
	l := newLorem(t, 1)
	_, err := l.Word(lorem.WordInit{Syllables: 2, Length: 5})
	assert.ErrorIs(t, err, lorem.ErrMutuallyExclusive)
}

func TestWord_Length(t *testing.T) {
	l := newLorem(t, 2)
	for _, n := range []int{1, 4, 9, 17} {
		w, err := l.Word(lorem.WordInit{Length: n})
		require.NoError(t, err)
		assert.Len(t, w, n)
	}
}

func TestWord_SyllablesAlternate(t *testing.T) {
	l := newLorem(t, 3)
	en := locale.En()
	for i := 0; i < 200; i++ {
		s := l.Syllable(lorem.SyllableInit{})
		require.True(t, len(s) == 2 || len(s) == 3, "syllable %q", s)
		for j := 1; j < len(s); j++ {
			prevVowel := strings.ContainsRune(en.Syntax.Vowels, rune(s[j-1]))
			curVowel := strings.ContainsRune(en.Syntax.Vowels, rune(s[j]))
			require.NotEqual(t, prevVowel, curVowel, "syllable %q must alternate", s)
		}
	}

	w, err := l.Word(lorem.WordInit{Syllables: 3, Capitalize: true})
	require.NoError(t, err)
	assert.True(t, unicode.IsUpper(rune(w[0])))
	assert.GreaterOrEqual(t, len(w), 6)
}

func TestWords(t *testing.T) {
	l := newLorem(t, 4)
	assert.Len(t, strings.Fields(l.Words(5)), 5)
	assert.Equal(t, "", l.Words(0))
}

func TestSetLocale_UsesResolvedPools(t *testing.T) {
	l := newLorem(t, 5)
	l.SetLocale(locale.Locale{Syntax: locale.Syntax{Consonants: "x", Vowels: "o"}})
	for i := 0; i < 50; i++ {
		s := l.Syllable(lorem.SyllableInit{Length: 4})
		require.Regexp(t, `^(xoxo|oxox)$`, s)
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Ahoy", lorem.Capitalize("ahoy"))
	assert.Equal(t, "", lorem.Capitalize(""))
	assert.Equal(t, "Éa", lorem.Capitalize("éa"))
}
