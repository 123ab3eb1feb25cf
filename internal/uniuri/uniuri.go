package uniuri

import (
	"crypto/rand"
)

const (
	// IDLen is the length of entity identifiers (~126 bits of entropy).
	IDLen = 21

	// byteRange is the total number of possible byte values (2^8).
	byteRange = 256

	// maxBufLen caps the temporary buffer of random bytes.
	maxBufLen = 1024
)

// URLChars is the URL-safe alphabet used for identifiers.
var URLChars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-")

// New returns a new random identifier of IDLen URL-safe characters.
func New() string {
	return NewLenChars(IDLen, URLChars)
}

// NewLen returns a new random identifier of the given length.
func NewLen(length int) string {
	return NewLenChars(length, URLChars)
}

// NewLenChars returns a random string of the given length drawn from chars
// (2 to 256 characters). Bytes that would bias the distribution are rejected.
func NewLenChars(length int, chars []byte) string {
	if length <= 0 {
		return ""
	}

	clen := len(chars)
	if clen < 2 || clen > byteRange {
		panic("uniuri: wrong charset length for NewLenChars")
	}

	// largest byte value that maps uniformly onto chars
	limit := byteRange - (byteRange % clen)

	bufLen := length + length/2
	if bufLen > maxBufLen {
		bufLen = maxBufLen
	}

	buf := make([]byte, bufLen)
	out := make([]byte, 0, length)

	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			panic("uniuri: error reading random bytes: " + err.Error())
		}

		for _, rb := range buf {
			if int(rb) >= limit {
				continue
			}

			out = append(out, chars[int(rb)%clen])
			if len(out) == length {
				break
			}
		}
	}

	return string(out)
}
