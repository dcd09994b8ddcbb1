// Package sdl wraps the RIC's shared-data-layer (topology) northbound API.
//
// The client is plain I/O glue: it has no lifecycle coupling to the xapp
// bootstrap layer and can be created and closed independently of it.
//
//	client, err := sdl.New(sdl.Config{Endpoint: "https://onos-topo:5150"})
//	if err != nil { ... }
//	defer client.Close()
//
//	cells, err := client.GetCellIDs(ctx, e2NodeID)
package sdl
