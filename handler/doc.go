// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value already filled by
// binders (see pkg/binder) and returns a Response:
//
//	type getJobRequest struct {
//		ID int64 `path:"id"`
//	}
//
//	func (h *Jobs) get(ctx handler.Context, req getJobRequest) handler.Response {
//		job, err := h.store.Get(ctx, req.ID)
//		if err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(map[string]any{"job": job})
//	}
//
//	r.Get("/jobs/{id}", handler.Wrap(h.get,
//		handler.WithBinders(binder.Path(binder.ChiParam)),
//		handler.WithErrorHandler(handler.NewErrorHandler(log)),
//	))
//
// # Responses
//
// JSON bodies use one envelope:
//
//	{"data": ..., "meta": {...}, "error": {"code": "...", "message": "...", "details": {...}}}
//
// The status of an error response comes from core.StatusCode, so any error
// classified with core.HTTPError or core.ValidationError maps to the right
// code. Messages of 5xx errors are never sent to the client.
//
// # Errors
//
// Binding and rendering failures go to the ErrorHandler. NewErrorHandler
// logs 4xx at WARN and 5xx at ERROR, then writes the JSON error envelope.
package handler
