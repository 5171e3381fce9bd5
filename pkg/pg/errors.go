package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/jobboard/core"
)

var (
	ErrFailedToOpenDBConnection = errors.New("failed to open db connection")
	ErrHealthcheckFailed        = errors.New("healthcheck failed, connection is not available")
	ErrFailedToParseDBConfig    = errors.New("failed to parse db config")
)

// IsNotFoundError detects pgx.ErrNoRows for consistent "not found" handling across queries.
func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, pgx.ErrNoRows)
}

// IsDuplicateKeyError detects PostgreSQL unique constraint violations (SQLSTATE 23505).
func IsDuplicateKeyError(err error) bool {
	return hasCode(err, "23505")
}

// IsForeignKeyViolationError detects referential integrity violations (SQLSTATE 23503).
func IsForeignKeyViolationError(err error) bool {
	return hasCode(err, "23503")
}

// IsInvalidInputError detects values the database refused to convert
// (SQLSTATE class 22, e.g. 22P02 invalid_text_representation).
func IsInvalidInputError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && len(pgErr.Code) == 5 && pgErr.Code[:2] == "22"
}

// IsUndefinedColumnError detects references to unknown columns (SQLSTATE 42703).
func IsUndefinedColumnError(err error) bool {
	return hasCode(err, "42703")
}

// MapError attaches the API error class matching a driver error, keeping
// the original in the chain. Unknown errors are returned unchanged and
// surface as 500.
func MapError(err error) error {
	switch {
	case err == nil:
		return nil
	case IsNotFoundError(err):
		return errors.Join(err, core.ErrNotFound)
	case IsDuplicateKeyError(err):
		return errors.Join(err, core.ErrConflict)
	case IsInvalidInputError(err), IsUndefinedColumnError(err):
		return errors.Join(err, core.ErrBadRequest)
	default:
		return err
	}
}

func hasCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
