package config

import "errors"

var (
	// ErrInvalidConfig is returned by [GetStructuredConfig] when the merged
	// configuration violates a validation rule (for example, a missing token
	// sign key or DSN).
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidFlagValue is returned by [ParseFlags] when a flag value
	// cannot be parsed.
	ErrInvalidFlagValue = errors.New("invalid flag value")
)
