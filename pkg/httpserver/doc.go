// Package httpserver wraps net/http.Server with graceful shutdown,
// functional options, and env-driven configuration.
//
// Run blocks until the context is cancelled, an interrupt signal arrives,
// or the listener fails; in the first two cases in-flight requests get
// ShutdownTimeout to complete.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server exited", logger.Error(err))
//	}
package httpserver
