package binder

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/jobboard/core"
)

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParseQuery   = errors.New("failed to parse query parameters")
	ErrFailedToParsePath    = errors.New("failed to parse path parameters")
	ErrRequestTooLarge      = errors.New("request body too large")
	ErrInvalidTarget        = errors.New("binding target must be a non-nil pointer to struct")
)

// errUnsupportedMediaType classifies ErrUnsupportedMediaType as 415.
var errUnsupportedMediaType = core.NewHTTPError(http.StatusUnsupportedMediaType, "unsupported_media_type")

func invalid(kind error, field, message string) error {
	return errors.Join(kind, core.Invalid(field, message))
}
