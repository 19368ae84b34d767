package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer serves requests until ctx is cancelled or a termination
	// signal arrives, then shuts down gracefully. It returns the first
	// error that stopped serving or shutting down.
	RunServer(ctx context.Context) error
}
