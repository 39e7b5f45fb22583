package uniuri

import (
	"crypto/rand"
)

const (
	// StdLen is a standard length of uniuri string to achieve ~95 bits of entropy.
	StdLen = 16

	// byteRange is the total number of possible byte values.
	byteRange = 256

	// maxBufLen caps the size of a single read from crypto/rand.
	maxBufLen = 2048
)

// StdChars is a set of standard characters allowed in uniuri string.
var StdChars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789") //nolint:gochecknoglobals

// IDChars are the characters of element ids: lower case letters and digits.
var IDChars = []byte("abcdefghijklmnopqrstuvwxyz0123456789") //nolint:gochecknoglobals

// New returns a new random string of the standard length, consisting of standard characters.
func New() string {
	return NewLenChars(StdLen, StdChars)
}

// NewLen returns a new random string of the provided length, consisting of standard characters.
func NewLen(length int) string {
	return NewLenChars(length, StdChars)
}

// NewLenChars returns a new random string of the provided length, consisting
// of the provided byte slice of allowed characters (2 to 256).
func NewLenChars(length int, chars []byte) string {
	if length <= 0 {
		return ""
	}

	clen := len(chars)
	if clen < 2 || clen > byteRange {
		panic("uniuri: wrong charset length for NewLenChars")
	}

	// bytes above limit are rejected to avoid modulo bias
	limit := byteRange - (byteRange % clen)

	out := make([]byte, 0, length)
	buf := make([]byte, min(length*2, maxBufLen)) //nolint:mnd

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
