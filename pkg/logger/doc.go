// Package logger builds *slog.Logger instances for the polyglot services and
// keeps attribute naming consistent across packages.
//
// New applies functional options (format, level, output, static attributes,
// context extractors) and wraps the resulting slog.Handler so that values
// stored in a context.Context, such as request ids, are appended to every
// record logged with a *Context method.
//
// Library packages never create their own output: they accept a *slog.Logger
// through an option and default to Discard().
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment("production", "polyglot"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
//	log.WarnContext(ctx, "dictionary fetch failed",
//		logger.Language(lang),
//		logger.Version(version),
//		logger.Error(err),
//	)
package logger
