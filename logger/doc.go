// Package logger provides structured, single-line logging for xappkit
// services, backed by zerolog.
//
// Every record carries a level, a timestamp, the source location of the
// call site, and a message, plus any structured fields:
//
//	log := logger.New(&logger.Config{Level: "info"}, "my-xapp")
//	log.Info("connected", logger.Fields("endpoint", addr))
package logger
