// Package server wires and runs the application's transport servers.
//
// It provides orchestration for HTTP and gRPC server lifecycles, including
// startup, signal handling, graceful shutdown of all enabled transports and
// the background workers that live as long as the servers do.
package server
