package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrMalformedDictionary = errors.New("malformed dictionary")
	ErrEmptyCorpus         = errors.New("no tokens processed")
)
