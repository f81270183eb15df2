package loader

import "errors"

// Sentinel kinds for loader errors.
var (
	ErrOpen          = errors.New("open dataset failed")
	ErrMissingColumn = errors.New("required column missing")
	ErrParse         = errors.New("malformed dataset value")
)
