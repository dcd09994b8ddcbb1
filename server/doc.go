// Package server provides the HTTP server loop for xApps: a Gin engine
// behind a net/http server with h2c support, a standard middleware stack
// (recovery, request ID, error translation, request logging, optional
// tracing), and graceful shutdown.
//
// The bootstrap layer in package xapp owns the server's start and stop;
// this package only accepts connections and dispatches to the registered
// route table.
package server
