// Package logger builds configured log/slog loggers. It supports JSON and
// text output, level selection, static attributes and environment presets so
// services construct their logger in one call:
//
//	log := logger.New(logger.WithProduction("webglot"))
//	log.Info("server starting", "addr", addr)
//
// Development preset uses text output at debug level; production uses JSON at
// info level for log aggregation systems.
package logger
