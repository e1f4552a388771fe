package password

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	Upper    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lower    = "abcdefghijklmnopqrstuvwxyz"
	Digit    = "0123456789"
	Symbol   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	AlphaNum = Upper + Lower + Digit
	// Printable is every printable ASCII character except space.
	Printable = AlphaNum + Symbol
)

// Random returns n characters drawn uniformly from charset, or from
// Printable when charset is empty. charset is indexed by byte, so it should
// be ASCII.
func Random(n int, charset string) (string, error) {
	if n <= 0 {
		return "", ErrInvalidLength
	}
	if charset == "" {
		charset = Printable
	}

	limit := big.NewInt(int64(len(charset)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", errors.Join(ErrRandomFailed, err)
		}
		out[i] = charset[idx.Int64()]
	}
	return string(out), nil
}
