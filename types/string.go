package types

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/seedmock/mersenne"
)

// Character pools.
const (
	CharsLower = "abcdefghijklmnopqrstuvwxyz"
	CharsUpper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Numbers    = "0123456789"
	Symbols    = "!@#$%^&*()[]"
	HexPool    = Numbers + "abcdef"

	// DefaultStringPool is the pool String draws from.
	DefaultStringPool = CharsUpper + CharsLower
)

const (
	methodStringFrom = "StringFrom"

	defaultStringSize = 10
	// MaxStringSize caps the number of characters drawn in one call.
	MaxStringSize = 1 << 20
)

// Casing selects letter case for Character and Hash.
type Casing int

const (
	// CasingAny uses both lower and upper case letters.
	CasingAny Casing = iota
	// CasingLower uses lower case letters only.
	CasingLower
	// CasingUpper uses upper case letters only.
	CasingUpper
)

// CharacterInit configures Character.
//
// A non-empty Pool wins over the composition flags. With no flag set the pool
// is letters, digits and symbols together.
type CharacterInit struct {
	Casing  Casing
	Pool    string
	Alpha   bool
	Numeric bool
	Symbols bool
}

// DrawString draws size characters from pool (with replacement) on e.
// size is clamped to [0, MaxStringSize]; pool must not be empty.
func DrawString(e *mersenne.Engine, size int, pool []rune) string {
	if size < 0 {
		size = 0
	}
	if size > MaxStringSize {
		size = MaxStringSize
	}

	init := NumberInit{Min: 0, Max: float64(len(pool) - 1), Precision: 1}
	var b strings.Builder
	b.Grow(size)
	for i := 0; i < size; i++ {
		b.WriteRune(pool[int(Draw(e, init))])
	}

	return b.String()
}

// String draws size characters from DefaultStringPool.
func (t *Types) String(size int) string {
	return DrawString(t.engine(), size, []rune(DefaultStringPool))
}

// DefaultString draws a string of the default size (10).
func (t *Types) DefaultString() string {
	return t.String(defaultStringSize)
}

// StringFrom draws size characters from pool.
func (t *Types) StringFrom(size int, pool string) (string, error) {
	runes := []rune(pool)
	if len(runes) == 0 {
		return "", fmt.Errorf("%s: %w", methodStringFrom, ErrEmptyPool)
	}

	return DrawString(t.engine(), size, runes), nil
}

// Character draws one character from the pool described by init.
func (t *Types) Character(init CharacterInit) string {
	pool := []rune(characterPool(init))

	return string(pool[int(t.NumberUpTo(float64(len(pool)-1)))])
}

func characterPool(init CharacterInit) string {
	if init.Pool != "" {
		return init.Pool
	}

	var letters string
	switch init.Casing {
	case CasingLower:
		letters = CharsLower
	case CasingUpper:
		letters = CharsUpper
	default:
		letters = CharsLower + CharsUpper
	}

	var pool strings.Builder
	if init.Alpha {
		pool.WriteString(letters)
	}
	if init.Numeric {
		pool.WriteString(Numbers)
	}
	if init.Symbols {
		pool.WriteString(Symbols)
	}
	if pool.Len() == 0 {
		// no constraints means everything
		return letters + Numbers + Symbols
	}

	return pool.String()
}
