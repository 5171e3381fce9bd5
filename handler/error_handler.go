package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/jobboard/core"
	"github.com/dmitrymomot/jobboard/pkg/logger"
)

// NewErrorHandler logs the error once and writes the JSON error envelope.
// Client errors are logged at WARN, server errors at ERROR.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(ctx Context, err error) {
		status := core.StatusCode(err)
		r := ctx.Request()

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}

		log.LogAttrs(r.Context(), level, "request error",
			logger.Error(err),
			logger.Status(status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("http"),
		)

		if renderErr := errorJSON(err).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response", logger.Error(renderErr))
		}
	}
}
