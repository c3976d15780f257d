package types

import (
	"strings"

	"github.com/google/uuid"
)

const (
	defaultHashLength = 40

	// hexaDecimalPool includes both cases of the letter digits.
	hexaDecimalPool = "0123456789abcdefABCDEF"

	uuidNibbles        = 32
	uuidVersionNibble  = 12 // the "4" in xxxxxxxx-xxxx-4xxx-yxxx-...
	uuidVariantNibble  = 16 // the "y" in xxxxxxxx-xxxx-4xxx-yxxx-...
	uuidVersion4       = 0x4
	uuidVariantBits    = 0x8
	uuidVariantMask    = 0x3
	uuidMaxNibbleValue = 15
)

// HashInit configures Hash.
type HashInit struct {
	// Length is the number of hex digits; 0 means 40.
	Length int
	// Casing selects upper case digits when CasingUpper; anything else is lower.
	Casing Casing
}

// DefaultHashInit returns {40, lower}.
func DefaultHashInit() HashInit {
	return HashInit{Length: defaultHashLength, Casing: CasingLower}
}

// UUID returns a random RFC 4122 version 4 UUID.
//
// Nibbles are drawn left to right, one number(0..15) per position except the
// fixed version nibble; the variant nibble is forced into 8..b.
func (t *Types) UUID() string {
	e := t.engine()
	nibble := NumberInit{Min: 0, Max: uuidMaxNibbleValue, Precision: 1}

	var nibbles [uuidNibbles]byte
	for i := range nibbles {
		switch i {
		case uuidVersionNibble:
			nibbles[i] = uuidVersion4
		case uuidVariantNibble:
			n := byte(Draw(e, nibble))
			nibbles[i] = n&uuidVariantMask | uuidVariantBits
		default:
			nibbles[i] = byte(Draw(e, nibble))
		}
	}

	var id uuid.UUID
	for i := range id {
		id[i] = nibbles[2*i]<<4 | nibbles[2*i+1]
	}

	return id.String()
}

// Hash returns a string of hex digits.
func (t *Types) Hash(init HashInit) string {
	length := init.Length
	if length <= 0 {
		length = defaultHashLength
	}
	pool := HexPool
	if init.Casing == CasingUpper {
		pool = strings.ToUpper(pool)
	}

	return DrawString(t.engine(), length, []rune(pool))
}

// HexaDecimal returns "0x" followed by size hex digits of mixed case.
// A size below 1 yields one digit.
func (t *Types) HexaDecimal(size int) string {
	if size < 1 {
		size = 1
	}

	return "0x" + DrawString(t.engine(), size, []rune(hexaDecimalPool))
}
