// Package httpserver wraps http.Server with graceful shutdown, signal
// handling and structured logging so entrypoints reduce to:
//
//	srv := httpserver.New(
//		httpserver.WithAddr(cfg.Addr),
//		httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM arrives or the
// listener fails, then shuts down gracefully within the configured timeout.
package httpserver
