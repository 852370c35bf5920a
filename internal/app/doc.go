// Package app wires a polycrystal run together: it configures the logger,
// loads the recipe through a config.Loader, resolves phases against the
// registry, sets up the external toolchain and scratch space, and drives the
// pipeline. The cli package produces its Config; cmd/cli owns the process
// exit.
package app
