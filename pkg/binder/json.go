package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20

// JSON decodes the request body into v.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		body, err := readJSONBody(r, DefaultMaxJSONSize)
		if err != nil {
			return err
		}
		return decodeJSON(body, v)
	}
}

// readJSONBody checks the media type and reads at most limit bytes. A
// missing Content-Type is accepted as JSON.
func readJSONBody(r *http.Request, limit int64) ([]byte, error) {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "application/json" {
			return nil, errors.Join(ErrUnsupportedMediaType, errUnsupportedMediaType)
		}
	}

	if r.Body == nil {
		return nil, invalid(ErrFailedToParseJSON, "body", "must not be empty")
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return nil, invalid(ErrFailedToParseJSON, "body", "could not be read")
	}
	if int64(len(body)) > limit {
		return nil, invalid(ErrRequestTooLarge, "body", fmt.Sprintf("must not exceed %d bytes", limit))
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, invalid(ErrFailedToParseJSON, "body", "must not be empty")
	}

	return body, nil
}

func decodeJSON(body []byte, v any) error {
	if _, ok := v.(json.Unmarshaler); ok {
		if err := json.Unmarshal(body, v); err != nil {
			return joinDecodeError(err)
		}
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return joinDecodeError(err)
	}
	if dec.More() {
		return invalid(ErrFailedToParseJSON, "body", "unexpected data after JSON object")
	}
	return nil
}

// joinDecodeError keeps validation errors raised by custom unmarshalers and
// turns decoder errors into one.
func joinDecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return invalid(ErrFailedToParseJSON, typeErr.Field, "must be of type "+typeErr.Type.String())
	case isValidation(err):
		return errors.Join(ErrFailedToParseJSON, err)
	default:
		return invalid(ErrFailedToParseJSON, "body", err.Error())
	}
}
