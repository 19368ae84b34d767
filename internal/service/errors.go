package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by sign-in for an unknown email, a
	// wrong password and any other sign-in failure alike.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrTokenIsExpiredOrInvalid = errors.New("invalid or expired token")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrDatabaseUnavailable = errors.New("database is unavailable")
)
