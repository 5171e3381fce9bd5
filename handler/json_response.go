package handler

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"

	"github.com/dmitrymomot/jobboard/core"
)

// JSONResponse is the standard JSON response structure
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta adds metadata to response
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON renders v as the data member of the envelope with status 200.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusOK,
		body:   JSONResponse{Data: v},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Created renders v with status 201.
func Created(v any) Response {
	return JSON(v, WithJSONStatus(http.StatusCreated))
}

// errorResponse is returned by JSONError. Wrap hands it to the error
// handler instead of rendering it directly.
type errorResponse struct {
	err error
}

func (e errorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return errorJSON(e.err).Render(w, r)
}

// JSONError returns an error response. Its status is core.StatusCode(err).
func JSONError(err error) Response {
	if err == nil {
		err = core.ErrInternalServerError
	}
	return errorResponse{err: err}
}

func errorJSON(err error) jsonResponse {
	return jsonResponse{
		status: core.StatusCode(err),
		body:   JSONResponse{Error: errorToDetail(err)},
	}
}

// errorToDetail builds the public error body. Validation details are
// copied; server error messages are replaced with the status text.
func errorToDetail(err error) *ErrorDetail {
	status := core.StatusCode(err)
	detail := &ErrorDetail{
		Code:    core.Key(err),
		Message: http.StatusText(status),
	}

	var verr core.ValidationError
	if errors.As(err, &verr) {
		detail.Message = verr.Error()
		if len(verr) > 0 {
			detail.Details = make(map[string][]string, len(verr))
			maps.Copy(detail.Details, verr)
		}
	}

	return detail
}
