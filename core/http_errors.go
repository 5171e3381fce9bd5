package core

import "net/http"

// HTTPError classifies an error by the HTTP status it should surface as.
// Key is a stable machine-readable code rendered in error responses.
type HTTPError struct {
	Code int    // HTTP status code
	Key  string // Response error code (e.g., "not_found", "unauthorized")
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Key
}

// Client errors. Both authentication and authorization failures surface
// as 401; the API does not use 403.
var (
	ErrBadRequest      = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrUnauthenticated = HTTPError{Code: http.StatusUnauthorized, Key: "unauthenticated"}
	ErrUnauthorized    = HTTPError{Code: http.StatusUnauthorized, Key: "unauthorized"}
	ErrNotFound        = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrConflict        = HTTPError{Code: http.StatusConflict, Key: "conflict"}
)

// Server errors
var (
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
	ErrServiceUnavailable  = HTTPError{Code: http.StatusServiceUnavailable, Key: "service_unavailable"}
)

// NewHTTPError creates a custom HTTP error with the given status code and key.
//
// Example:
//
//	err := core.NewHTTPError(http.StatusGone, "job_closed")
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}
