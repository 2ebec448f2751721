package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	bhnerr "github.com/birthhealthnetwork/bhn-backend/internal/pkg/errors"
)

// Postgres error codes the constraint taxonomy cares about.
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
	codeInvalidTextRep      = "22P02" // covers labels outside an enum type
)

// ClassifyError maps engine errors onto the sentinel taxonomy so callers
// can branch with errors.Is instead of parsing driver messages. Errors that
// are not constraint failures pass through unchanged.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return bhnerr.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return fmt.Errorf("%w: %s", bhnerr.ErrUniqueViolation, pgErr.ConstraintName)
	case codeForeignKeyViolation:
		return fmt.Errorf("%w: %s", bhnerr.ErrForeignKeyViolation, pgErr.ConstraintName)
	case codeCheckViolation:
		return fmt.Errorf("%w: %s", bhnerr.ErrCheckViolation, pgErr.ConstraintName)
	case codeNotNullViolation:
		return fmt.Errorf("%w: %s.%s", bhnerr.ErrNotNullViolation, pgErr.TableName, pgErr.ColumnName)
	case codeInvalidTextRep:
		return fmt.Errorf("%w: %s", bhnerr.ErrEnumViolation, pgErr.Message)
	}
	return err
}
