// Package httpclient is a small JSON-over-HTTP client used by the sdl and
// e2 wrappers to talk to the RIC's northbound APIs. It supports mutual TLS
// and server-sent-event streams.
package httpclient
