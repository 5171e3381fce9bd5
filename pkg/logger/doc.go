// Package logger builds the service *slog.Logger and keeps attribute names
// consistent across packages.
//
// New returns a logger whose handler runs every registered ContextExtractor
// on each record, so request-scoped values such as the request id or the
// authenticated username are attached without threading loggers through
// call chains.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.App.Env, cfg.App.Name),
//		logger.WithLevelName(cfg.Log.Level),
//		logger.WithContextExtractors(requestid.LoggerExtractor(), jwt.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "job created", logger.Component("jobs"), logger.JobID(id))
//
// Helpers returning slog.Attr produce an empty attribute for nil input, which
// slog drops.
package logger
