package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation.
var (
	ErrMissingSource = errors.New("source id is required")
	ErrMissingTarget = errors.New("target id is required")
)

// ErrInvalidArgs indicates the process was started with the wrong positional configuration.
var ErrInvalidArgs = errors.New("invalid arguments")

// ErrFieldTooLong returns an error indicating a field exceeds its maximum length.
func ErrFieldTooLong(field string, maxLen int) error {
	return fmt.Errorf("%s exceeds maximum length of %d", field, maxLen)
}

// Sentinel errors for phase ordering.
var (
	ErrCacheBuilt    = errors.New("neighbor cache already built")
	ErrCacheNotBuilt = errors.New("neighbor cache not built")
)
