package binder

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ParamExtractor returns the value of a named route parameter.
type ParamExtractor func(r *http.Request, name string) string

// ChiParam reads route parameters from chi.
var ChiParam ParamExtractor = chi.URLParam

// Path binds route parameters using extractor.
func Path(extractor ParamExtractor) func(r *http.Request, v any) error {
	if extractor == nil {
		extractor = ChiParam
	}
	return func(r *http.Request, v any) error {
		return bindFields(v, "path", ErrFailedToParsePath, func(name string) ([]string, bool) {
			if value := extractor(r, name); value != "" {
				return []string{value}, true
			}
			return nil, false
		})
	}
}
