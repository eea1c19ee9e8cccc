// Package httpserver runs an http.Handler with signal-aware graceful shutdown
// and provides liveness and readiness handlers.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// Run returns when ctx is done or on SIGINT/SIGTERM. Listen errors are
// wrapped with ErrStart and shutdown errors with ErrShutdown.
package httpserver
