package password

import "errors"

var (
	ErrHashFailed    = errors.New("password: hashing failed")
	ErrInvalidCost   = errors.New("password: bcrypt cost out of range")
	ErrInvalidLength = errors.New("password: length must be positive")
	ErrRandomFailed  = errors.New("password: random source failed")
)
