// Package binder fills typed request structs from HTTP requests.
//
// Each binder handles one source and is applied by handler.Wrap in order:
//
//   - Path reads route parameters (`path:"name"` tags) through an extractor
//     such as chi.URLParam.
//   - Query reads the URL query string (`query:"name"` tags).
//   - JSON decodes the body strictly, rejecting unknown fields and trailing
//     data. Targets implementing json.Unmarshaler decode themselves.
//   - Schema validates the raw body against a JSON Schema before decoding it
//     like JSON.
//
// Untagged fields bind to their lower-cased name; `-` skips a field.
// Supported field kinds are strings, integers, floats, bools, pointers to
// them and slices of them.
//
// Every binding failure is reported as a core.ValidationError keyed by the
// offending parameter, so it surfaces as 400 with field details.
//
//	type getJobRequest struct {
//		ID int64 `path:"id"`
//	}
//
//	r.Get("/jobs/{id}", handler.Wrap(getJob,
//		handler.WithBinders[getJobRequest](binder.Path(binder.ChiParam)),
//	))
package binder
