package httpserver

import "errors"

var (
	// ErrStart wraps listener and startup failures from Run.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrShutdown wraps errors from an unclean graceful shutdown.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
)
