package movierental

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

var (
	// ErrInvalidMovie is returned when a movie fails validation before insert.
	ErrInvalidMovie = errors.New("invalid movie")

	// ErrDuplicateEmail is returned when an email is already held by another customer.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrForeignKey is returned when a statement breaks a foreign key reference.
	ErrForeignKey = errors.New("foreign key violation")

	// ErrNotFound is returned when a single-row lookup matches nothing.
	ErrNotFound = errors.New("not found")
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// constraintKind classifies a driver error as a unique or foreign key
// violation. It returns nil for anything else.
func constraintKind(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrDuplicateEmail
		case pgForeignKeyViolation:
			return ErrForeignKey
		}
		return nil
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique:
			return ErrDuplicateEmail
		case sqlite3.ErrConstraintForeignKey:
			return ErrForeignKey
		}
	}
	return nil
}

// wrapStoreError annotates err with op and, when the driver reports a known
// constraint violation, the matching sentinel. The driver error stays in the
// chain.
func wrapStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	if kind := constraintKind(err); kind != nil {
		return fmt.Errorf("%s: %w: %w", op, kind, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
