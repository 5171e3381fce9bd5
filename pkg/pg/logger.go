package pg

import "context"

// logger is the subset of *slog.Logger used to report connection attempts.
type logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
}
