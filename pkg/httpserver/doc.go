// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run opens the listener, fires start hooks, and serves until the context is
// cancelled or the process receives SIGINT/SIGTERM. Shutdown then drains
// in-flight requests within the configured timeout and fires stop hooks.
// Listen failures wrap ErrStart and drain failures wrap ErrShutdown.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler provides liveness and readiness endpoints.
package httpserver
