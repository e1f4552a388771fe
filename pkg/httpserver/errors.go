package httpserver

import "errors"

var (
	ErrStart          = errors.New("httpserver: failed to start")
	ErrShutdown       = errors.New("httpserver: graceful shutdown failed")
	ErrAlreadyServing = errors.New("httpserver: already serving")
	ErrInvalidOption  = errors.New("httpserver: invalid option")
)
