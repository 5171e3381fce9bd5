package schema

import "errors"

var (
	// ErrUnknownSchema is returned when validating against an unregistered $id.
	ErrUnknownSchema = errors.New("schema: unknown schema")
	// ErrInvalidDocument is returned when a document violates its schema.
	ErrInvalidDocument = errors.New("schema: document is not valid")
	// ErrMissingID is returned when a schema has no $id.
	ErrMissingID = errors.New("schema: missing $id")
)
