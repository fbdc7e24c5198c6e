package crypto

import (
	"crypto/rand"
	"math"
)

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"
	idSize     = 22 // 132 bits
	idMask     = 63
)

// NewID returns a random URL-safe identifier of idSize characters, used for
// session ids.
func NewID() string {
	step := int(math.Ceil(1.6 * float64(idMask*idSize) / float64(len(idAlphabet))))
	id := make([]byte, idSize)
	buf := make([]byte, step)

	for pos := 0; pos < idSize; {
		// crypto/rand.Read never returns an error.
		_, _ = rand.Read(buf)
		for i := 0; i < step && pos < idSize; i++ {
			idx := buf[i] & idMask
			if int(idx) < len(idAlphabet) {
				id[pos] = idAlphabet[idx]
				pos++
			}
		}
	}

	return string(id)
}
