package csrf

import "errors"

var (
	ErrTokenNotFound = errors.New("csrf: token not found")
	ErrInvalidToken  = errors.New("csrf: missing or invalid token")
)
