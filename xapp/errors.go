package xapp

import (
	"fmt"
	"strings"
)

// InvalidEntrypointError reports that the value passed to Run as the
// entrypoint is not runnable.
type InvalidEntrypointError struct {
	Reason string
}

// Error implements the error interface.
func (e *InvalidEntrypointError) Error() string {
	return "xapp: invalid entrypoint: " + e.Reason
}

// RouteKey is the identity of a route: its (method, path) pair.
type RouteKey struct {
	Method string
	Path   string
}

// String returns the key as "METHOD /path".
func (k RouteKey) String() string {
	return k.Method + " " + k.Path
}

// DuplicateRouteError reports user-supplied routes that collide with
// pre-registered ones. Conflicts holds every colliding identity, not just
// the first, so the caller can fix all of them in one pass.
type DuplicateRouteError struct {
	Conflicts []RouteKey
}

// Error implements the error interface.
func (e *DuplicateRouteError) Error() string {
	keys := make([]string, len(e.Conflicts))
	for i, k := range e.Conflicts {
		keys[i] = k.String()
	}
	return fmt.Sprintf("xapp: user-supplied routes conflict with pre-registered routes: [%s]",
		strings.Join(keys, ", "))
}
