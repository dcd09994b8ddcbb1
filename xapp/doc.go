// Package xapp is the bootstrap layer for RIC applications. It wires a
// user-supplied entrypoint into an HTTP server process, exposes the
// default health and introspection routes, and manages orderly startup
// and shutdown of the whole process.
//
//	func main() {
//	    err := xapp.Run(logic, "/etc/xapp/config.yml")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
//	func logic(ctx context.Context) error {
//	    // runs for the lifetime of the server
//	    <-ctx.Done()
//	    return ctx.Err()
//	}
//
// Run starts the entrypoint as a supervised background task alongside a
// shutdown listener, serves HTTP until the process receives a termination
// signal (or an HTTP client POSTs /shutdown), then tears both tasks down
// in reverse start order before returning.
package xapp
