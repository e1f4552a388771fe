package password

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const bcryptHashLen = 60

type options struct {
	cost int
}

// Option configures Hash.
type Option func(*options)

// WithCost sets the bcrypt cost. It panics outside bcrypt's accepted range.
func WithCost(cost int) Option {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		panic(fmt.Errorf("%w: %d", ErrInvalidCost, cost))
	}
	return func(o *options) { o.cost = cost }
}

// Hash encodes plain for storage. Each call uses a fresh salt, so two hashes
// of the same password differ; use Compare to verify.
func Hash(plain string, opts ...Option) (string, error) {
	o := options{cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(&o)
	}

	b, err := bcrypt.GenerateFromPassword([]byte(plain), o.cost)
	if err != nil {
		return "", errors.Join(ErrHashFailed, err)
	}
	return string(b), nil
}

// Compare reports whether plain matches the stored hash. Non-bcrypt hashes
// are treated as legacy unsalted MD5 hex digests.
func Compare(plain, hash string) bool {
	if IsBcrypt(hash) {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
	}
	sum := md5.Sum([]byte(plain))
	return Equal(strings.ToLower(hash), hex.EncodeToString(sum[:]))
}

// IsBcrypt reports whether hash looks like a bcrypt hash.
func IsBcrypt(hash string) bool {
	if len(hash) != bcryptHashLen {
		return false
	}
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(hash, prefix) {
			return true
		}
	}
	return false
}

// NeedsRehash reports whether hash should be replaced: it is a legacy digest
// or its bcrypt cost differs from the requested one.
func NeedsRehash(hash string, opts ...Option) bool {
	if !IsBcrypt(hash) {
		return true
	}
	o := options{cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(&o)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	return err != nil || cost != o.cost
}

// Equal compares a secret with user input in constant time with respect to
// the input's contents.
func Equal(known, input string) bool {
	return subtle.ConstantTimeCompare([]byte(known), []byte(input)) == 1
}
