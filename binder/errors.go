package binder

import "errors"

var (
	// ErrBinderNotApplicable lets a handler skip to the next binder.
	ErrBinderNotApplicable  = errors.New("binder: not applicable to request")
	ErrNotExpecter          = errors.New("binder: target does not implement Expecter")
	ErrUnsupportedMediaType = errors.New("binder: unsupported media type")
	ErrInvalidJSON          = errors.New("binder: invalid JSON")
)
