// Package logger builds *slog.Logger instances from functional options and injects
// attributes taken from context.Context into every record.
//
// New selects slog.NewTextHandler or slog.NewJSONHandler by Format, applies static
// attributes, and wraps the result with LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks when a record is handled. Defaults suit a library: text
// output on stderr at WARN level.
//
// Helper constructors in attr.go (Error, Component, Locale, MessageKey, Panic) keep
// attribute names consistent.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevelName("debug"),
//	    logger.WithAttr(logger.Component("validator")),
//	)
//	log.WarnContext(ctx, "message resolution failed", logger.MessageKey("validation.equals"))
package logger
