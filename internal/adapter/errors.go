package adapter

import "errors"

var (
	// ErrNotFound is returned for 404 answers: a missing user, item or
	// order, or an unknown route.
	ErrNotFound = errors.New("not found")

	// ErrBadRequest is returned for 400 answers. The server reports every
	// failure other than NotFound this way.
	ErrBadRequest = errors.New("bad request")

	// ErrUnexpectedStatus is returned for any other non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected status")

	ErrEmptyBaseURL = errors.New("empty base url")
)
