package binder

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/jobboard/core"
)

// DocumentValidator validates a raw JSON document against a schema id.
// *schema.Validator implements it.
type DocumentValidator interface {
	Validate(document []byte, id string) error
}

// Schema validates the body against the schema id and then decodes it like
// JSON.
func Schema(validator DocumentValidator, id string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		body, err := readJSONBody(r, DefaultMaxJSONSize)
		if err != nil {
			return err
		}
		if err := validator.Validate(body, id); err != nil {
			return err
		}
		return decodeJSON(body, v)
	}
}

func isValidation(err error) bool {
	var verr core.ValidationError
	return errors.As(err, &verr)
}
