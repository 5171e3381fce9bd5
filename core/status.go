package core

import (
	"errors"
	"net/http"
)

// StatusCode maps an error to the HTTP status it should be reported with.
// A ValidationError anywhere in the chain wins over an HTTPError; anything
// unclassified is a 500.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

// Key returns the response error code for err, following the same
// precedence as StatusCode.
func Key(err error) string {
	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		return "validation_error"
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Key
	}

	return ErrInternalServerError.Key
}
