package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is wrapped by every entity-specific "not found" error, so
	// callers that do not care about the entity can match it alone.
	ErrNotFound = errors.New("entity not found")

	ErrUserNotFound  = fmt.Errorf("%w: user", ErrNotFound)
	ErrItemNotFound  = fmt.Errorf("%w: item", ErrNotFound)
	ErrOrderNotFound = fmt.Errorf("%w: order", ErrNotFound)

	// ErrEmailAlreadyExists is returned when a user is created or updated
	// with an email that belongs to another user.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrReferencedEntityNotFound is returned when an order references a
	// user or an item that does not exist.
	ErrReferencedEntityNotFound = errors.New("referenced user or item does not exist")

	// ErrInvalidEntityData is returned when the database rejects a value
	// (NOT NULL, CHECK or data type violations).
	ErrInvalidEntityData = errors.New("invalid entity data")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails for a reason that has no domain meaning.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating over a multi-row result set
	// fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned by [NewConnect] for drivers other than
	// pgx and sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
