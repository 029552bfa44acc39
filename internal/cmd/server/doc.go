// Package serverrun starts the stamp server: it opens the runtime (state
// store + generator) and serves the HTTP API until the context is
// cancelled.
package serverrun
