package binder

import "net/http"

// Query binds URL query parameters. Empty values count as absent.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		query := r.URL.Query()
		return bindFields(v, "query", ErrFailedToParseQuery, func(name string) ([]string, bool) {
			values, ok := query[name]
			if !ok || (len(values) == 1 && values[0] == "") {
				return nil, false
			}
			return values, true
		})
	}
}
