package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassificator maps driver-specific errors to the store's sentinel
// errors. Classify returns nil when err has no domain meaning.
type ErrorClassificator interface {
	Classify(err error) error
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError].
func (c *PostgresErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return nil
}

// ClassifyPgError maps a *pgconn.PgError to a store sentinel based on the
// PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
//   - 23505 unique_violation      → [ErrEmailAlreadyExists]
//   - 23503 foreign_key_violation → [ErrReferencedEntityNotFound]
//   - 23502, 23514 and class 22   → [ErrInvalidEntityData]
//
// Any other code returns nil.
func ClassifyPgError(pgErr *pgconn.PgError) error {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return ErrEmailAlreadyExists
	case pgerrcode.ForeignKeyViolation:
		return ErrReferencedEntityNotFound
	case pgerrcode.NotNullViolation,
		pgerrcode.CheckViolation:
		return ErrInvalidEntityData
	}

	if pgerrcode.IsDataException(pgErr.Code) {
		return ErrInvalidEntityData
	}

	return nil
}

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite using the
// extended result codes reported by go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return nil
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique:
		return ErrEmailAlreadyExists
	case sqlite3.ErrConstraintForeignKey:
		return ErrReferencedEntityNotFound
	case sqlite3.ErrConstraintNotNull,
		sqlite3.ErrConstraintCheck:
		return ErrInvalidEntityData
	}

	if sqliteErr.Code == sqlite3.ErrMismatch {
		return ErrInvalidEntityData
	}

	return nil
}
