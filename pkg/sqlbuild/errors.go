package sqlbuild

import "errors"

var (
	// ErrNoData is returned by PartialUpdate when there is nothing to update.
	ErrNoData = errors.New("sqlbuild: no data supplied")
	// ErrDuplicateField is returned when a field mapping repeats a name.
	ErrDuplicateField = errors.New("sqlbuild: duplicate field")
	// ErrInvalidFields is returned when a field mapping cannot be decoded.
	ErrInvalidFields = errors.New("sqlbuild: invalid field mapping")
	// ErrInvalidNumber is returned when a numeric filter value does not parse.
	ErrInvalidNumber = errors.New("sqlbuild: invalid number")
)
