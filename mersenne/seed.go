package mersenne

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// EntropySeed returns a seed drawn from system entropy. If the entropy source
// is unavailable it falls back to the wall clock.
func EntropySeed() uint32 {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return uint32(time.Now().UnixNano())
	}

	return binary.LittleEndian.Uint32(buf[:])
}
