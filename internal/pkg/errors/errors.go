package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConflict is a generic sentinel for writes that lost to an existing row.
	ErrConflict = errors.New("conflict")

	// Constraint taxonomy. Every write error the engine reports maps onto
	// exactly one of these; callers translate them into their own terms.
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrCheckViolation      = errors.New("check constraint violation")
	ErrNotNullViolation    = errors.New("not-null violation")
	ErrEnumViolation       = errors.New("value outside enum domain")
)
