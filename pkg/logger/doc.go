// Package logger builds *slog.Logger values with functional options.
//
// New creates a text or JSON logger whose handler is wrapped by
// LogHandlerDecorator, which adds attributes pulled from the record's
// context (a request ID, for example) through ContextExtractor functions:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Environment, cfg.Name),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "form submitted", logger.Component("signup"))
//
// FromConfig turns config.App into options, honouring LOG_LEVEL and
// LOG_FORMAT on top of the environment preset.
//
// The attribute helpers in attr.go keep key names consistent. Error and
// Errors return an empty attribute for nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
